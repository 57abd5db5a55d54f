package dto

type TagResponse struct {
	Name    string `json:"name"`
	XPBonus int    `json:"xp_bonus"`
}

type ProfileResponse struct {
	StudentID  string        `json:"student_id"`
	Name       string        `json:"name"`
	ClassName  string        `json:"class_name"`
	Gender     string        `json:"gender"`
	Grade      *string       `json:"grade,omitempty"`
	TotalHours int           `json:"total_hours"`
	TotalXP    int           `json:"total_xp"`
	Level      int           `json:"level"`
	Rank       string        `json:"rank"`
	Tags       []TagResponse `json:"tags"`
}

// UpdateProfileRequest is a PATCH-style payload; nil fields are untouched.
// Password only changes when both fields are present and match.
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=6"`
	PasswordConfirm *string `json:"password_confirm,omitempty"`
}
