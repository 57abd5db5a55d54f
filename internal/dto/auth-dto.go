package dto

type LoginRequest struct {
	StudentID    string `json:"student_id" validate:"required"`
	Password     string `json:"password" validate:"required"`
	CaptchaToken string `json:"captcha_token,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// AuthClaims is what the auth middleware stores in the request context
// after verifying a token.
type AuthClaims struct {
	UserID    uint    `json:"user_id"`
	StudentID string  `json:"student_id"`
	IsAdmin   bool    `json:"is_admin"`
	Iat       float64 `json:"iat"`
	Expiry    float64 `json:"expiry"`
}
