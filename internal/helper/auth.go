package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 14 * 24 * time.Hour
)

type Auth struct {
	Secret string
}

func SetupAuth(s string) Auth {
	return Auth{
		Secret: s,
	}
}

func (a Auth) GenerateAccessToken(userID uint, studentID string, isAdmin bool) (string, error) {
	return a.generate(userID, studentID, isAdmin, "access", accessTokenTTL)
}

func (a Auth) GenerateRefreshToken(userID uint, studentID string, isAdmin bool) (string, error) {
	return a.generate(userID, studentID, isAdmin, "refresh", refreshTokenTTL)
}

func (a Auth) generate(userID uint, studentID string, isAdmin bool, typ string, ttl time.Duration) (string, error) {
	if userID == 0 || studentID == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now().Unix()
	exp := time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"student_id": studentID,
		"is_admin":   isAdmin,
		"typ":        typ,
		"iat":        now,
		"exp":        exp,
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

// VerifyToken accepts both "Bearer <token>" and a bare token string.
func (a Auth) VerifyToken(tokenString string) (dto.AuthClaims, error) {
	return a.verify(tokenString, "access")
}

func (a Auth) VerifyRefreshToken(tokenString string) (dto.AuthClaims, error) {
	return a.verify(tokenString, "refresh")
}

func (a Auth) verify(tokenString, wantTyp string) (dto.AuthClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthClaims{}, errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthClaims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthClaims{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthClaims{}, errors.New("invalid token claims")
	}

	if typ, _ := claims["typ"].(string); typ != wantTyp {
		return dto.AuthClaims{}, errors.New("wrong token type")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return dto.AuthClaims{}, errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return dto.AuthClaims{}, errors.New("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return dto.AuthClaims{}, errors.New("token expired")
	}

	userID, _ := claims["user_id"].(float64)
	studentID, _ := claims["student_id"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	iat, _ := claims["iat"].(float64)

	return dto.AuthClaims{
		UserID:    uint(userID),
		StudentID: studentID,
		IsAdmin:   isAdmin,
		Iat:       iat,
		Expiry:    expFloat,
	}, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.AuthClaims, error) {
	u := ctx.Locals("user")
	claims, ok := u.(dto.AuthClaims)
	if !ok {
		return dto.AuthClaims{}, errors.New("missing auth user in context")
	}
	return claims, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid student id or password")
	}
	return nil
}
