package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/clients/captcha"
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/dedewo882/volunteer-platform-final/internal/repository"
)

type UserService interface {
	Login(ctx context.Context, input dto.LoginRequest, remoteIP string) (*dto.TokenResponse, error)
	Refresh(refreshToken string) (*dto.TokenResponse, error)

	GetProfile(userID uint) (*dto.ProfileResponse, error)
	UpdateProfile(userID uint, input dto.UpdateProfileRequest) error
	MyRegistrations(userID uint) ([]dto.RegistrationResponse, error)

	IsAdmin(userID uint) (bool, error)
}

type userService struct {
	repo             repository.UserRepository
	profileRepo      repository.ProfileRepository
	registrationRepo repository.RegistrationRepository
	auth             helper.Auth

	// nil when CAPTCHA verification is disabled for the deployment.
	captcha         *captcha.Client
	captchaFailOpen bool
}

func NewUserService(
	repo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	registrationRepo repository.RegistrationRepository,
	auth helper.Auth,
	captchaClient *captcha.Client,
	captchaFailOpen bool,
) UserService {
	return &userService{
		repo:             repo,
		profileRepo:      profileRepo,
		registrationRepo: registrationRepo,
		auth:             auth,
		captcha:          captchaClient,
		captchaFailOpen:  captchaFailOpen,
	}
}

func (u *userService) Login(ctx context.Context, input dto.LoginRequest, remoteIP string) (*dto.TokenResponse, error) {
	studentID := strings.TrimSpace(input.StudentID)
	password := strings.TrimSpace(input.Password)

	if studentID == "" || password == "" {
		return nil, errors.New("invalid student id or password")
	}

	if u.captcha != nil {
		ok, err := u.captcha.Verify(ctx, input.CaptchaToken, remoteIP)
		if err != nil {
			// The verification service being unreachable is not the
			// student's fault. Fail-open deployments let the login
			// proceed; the weakened guarantee is a configured trade-off.
			if !u.captchaFailOpen {
				return nil, errors.New("captcha verification unavailable")
			}
			log.Printf("captcha verify error (failing open): %v", err)
		} else if !ok {
			return nil, errors.New("captcha verification failed")
		}
	}

	user, err := u.repo.FindUserByStudentID(studentID)
	if err != nil || user == nil || user.ID == 0 {
		return nil, errors.New("invalid student id or password")
	}

	if user.Status != "" && user.Status != domain.UserStatusActive {
		return nil, errors.New("account is not active")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, errors.New("invalid student id or password")
	}

	access, err := u.auth.GenerateAccessToken(user.ID, user.StudentID, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	refresh, err := u.auth.GenerateRefreshToken(user.ID, user.StudentID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *userService) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := u.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	// Re-read the account: a disabled user must not mint fresh tokens.
	user, err := u.repo.FindUserByID(claims.UserID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}
	if user.Status != "" && user.Status != domain.UserStatusActive {
		return nil, errors.New("account is not active")
	}

	access, err := u.auth.GenerateAccessToken(user.ID, user.StudentID, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access}, nil
}

func (u *userService) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	if userID == 0 {
		return nil, errors.New("invalid user_id")
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil || profile == nil {
		return nil, errors.New("profile not found")
	}

	resp := &dto.ProfileResponse{
		StudentID:  profile.StudentID,
		Name:       user.Name,
		ClassName:  profile.ClassName,
		Gender:     profile.Gender,
		TotalHours: profile.TotalHours,
		TotalXP:    profile.TotalXP,
		Level:      profile.Level(),
		Rank:       profile.Rank(),
		Tags:       make([]dto.TagResponse, 0, len(profile.Tags)),
	}
	if profile.Grade != nil {
		resp.Grade = &profile.Grade.Name
	}
	for _, t := range profile.Tags {
		resp.Tags = append(resp.Tags, dto.TagResponse{Name: t.Name, XPBonus: t.XPBonus})
	}
	return resp, nil
}

func (u *userService) UpdateProfile(userID uint, input dto.UpdateProfileRequest) error {
	if userID == 0 {
		return errors.New("invalid user_id")
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.New("name cannot be empty")
		}
		user.Name = name
	}

	if input.Password != nil && strings.TrimSpace(*input.Password) != "" {
		if input.PasswordConfirm == nil || *input.Password != *input.PasswordConfirm {
			return errors.New("passwords do not match")
		}
		hashed, err := u.auth.HashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hashed
	}

	return u.repo.SaveUser(user)
}

func (u *userService) MyRegistrations(userID uint) ([]dto.RegistrationResponse, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil || profile == nil {
		return nil, errors.New("profile not found")
	}

	regs, err := u.registrationRepo.ListByProfile(profile.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		item := dto.RegistrationResponse{
			ID:           reg.ID,
			ActivityID:   reg.ActivityID,
			SessionID:    reg.SessionID,
			Status:       reg.Status,
			HoursAwarded: reg.HoursAwarded,
			RegisteredAt: reg.CreatedAt,
		}
		if reg.Activity != nil {
			item.ActivityTitle = reg.Activity.Title
		}
		out = append(out, item)
	}
	return out, nil
}

func (u *userService) IsAdmin(userID uint) (bool, error) {
	user, err := u.repo.FindUserByID(userID)
	if err != nil || user == nil {
		return false, errors.New("user not found")
	}
	return user.IsAdmin, nil
}
