package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/interfaces"
	"github.com/dedewo882/volunteer-platform-final/internal/repository"
	"github.com/dedewo882/volunteer-platform-final/pkg/xlsx"
)

type RegistrationService interface {
	// Submit runs the whole eligibility and capacity gauntlet and creates a
	// Pending registration, or returns one of the domain business errors
	// without persisting anything.
	Submit(userID, activityID uint, input dto.RegisterRequest) (*dto.RegistrationResponse, error)

	SetStatus(input dto.BatchStatusRequest) (int64, error)
	SetHours(input dto.BatchHoursRequest) (int64, error)
	ExportByActivity(activityID uint) ([]byte, string, error)
}

type registrationService struct {
	repo         repository.RegistrationRepository
	profileRepo  repository.ProfileRepository
	activityRepo repository.ActivityRepository
	producer     interfaces.ProducerHandler
}

func NewRegistrationService(
	repo repository.RegistrationRepository,
	profileRepo repository.ProfileRepository,
	activityRepo repository.ActivityRepository,
	producer interfaces.ProducerHandler,
) RegistrationService {
	return &registrationService{
		repo:         repo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		producer:     producer,
	}
}

func (s *registrationService) Submit(userID, activityID uint, input dto.RegisterRequest) (*dto.RegistrationResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil || profile == nil {
		return nil, errors.New("profile not found")
	}

	activity, err := s.activityRepo.FindActivityByID(activityID)
	if err != nil || activity == nil {
		return nil, errors.New("activity not found")
	}
	if activity.Status != domain.ActivityStatusOpen {
		return nil, errors.New("activity is not open for registration")
	}

	// Rejection order mirrors the submission protocol: duplicate, activity
	// capacity, eligibility, session capacity.
	exists, err := s.repo.ExistsForProfileActivity(profile.ID, activity.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	if activity.Capacity > 0 {
		approved, err := s.repo.CountApprovedByActivity(activity.ID)
		if err != nil {
			return nil, err
		}
		if approved >= int64(activity.Capacity) {
			return nil, domain.ErrActivityFull
		}
	}

	if !activity.Eligible(profile) {
		return nil, domain.ErrNotEligible
	}

	if input.SessionID != nil {
		session, err := s.activityRepo.FindSessionByID(*input.SessionID)
		if err != nil || session == nil {
			return nil, errors.New("session not found")
		}
		if session.ActivityID != activity.ID {
			return nil, errors.New("session does not belong to this activity")
		}
		occupancy, err := s.repo.CountActiveBySession(session.ID)
		if err != nil {
			return nil, err
		}
		if session.IsFull(int(occupancy)) {
			return nil, domain.ErrSessionFull
		}
	}

	reg := &domain.Registration{
		ProfileID:       profile.ID,
		ActivityID:      activity.ID,
		SessionID:       input.SessionID,
		Phone:           input.Phone,
		ClassName:       input.ClassName,
		HeadteacherName: input.HeadteacherName,
		Status:          domain.RegistrationPending,
	}

	// The repository re-checks inside one transaction; races fall through
	// to the unique index.
	if err := s.repo.CreateChecked(reg, activity.Capacity); err != nil {
		return nil, err
	}

	s.publishRegistrationEvent("registration.created", reg, profile.StudentID, activity.Title)

	return &dto.RegistrationResponse{
		ID:            reg.ID,
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
		SessionID:     reg.SessionID,
		Status:        reg.Status,
		RegisteredAt:  reg.CreatedAt,
	}, nil
}

// SetStatus transitions the listed registrations. Deliberately no side
// effect on profile hours: hours flow only through the hours-award import.
func (s *registrationService) SetStatus(input dto.BatchStatusRequest) (int64, error) {
	if input.Status != domain.RegistrationApproved && input.Status != domain.RegistrationRejected {
		return 0, errors.New("invalid status")
	}

	affected, err := s.repo.UpdateStatus(input.IDs, input.Status)
	if err != nil {
		return 0, err
	}

	if regs, err := s.repo.FindByIDs(input.IDs); err == nil {
		for _, reg := range regs {
			studentID := ""
			if reg.Profile != nil {
				studentID = reg.Profile.StudentID
			}
			s.publishRegistrationEvent("registration.status", &reg, studentID, "")
		}
	}
	return affected, nil
}

func (s *registrationService) SetHours(input dto.BatchHoursRequest) (int64, error) {
	return s.repo.SetHoursAwarded(input.IDs, input.Hours)
}

var exportHeaders = []string{"姓名", "学号", "活动名称", "场次", "年级", "班级", "性别", "手机号", "班主任", "报名时间", "状态"}

func (s *registrationService) ExportByActivity(activityID uint) ([]byte, string, error) {
	activity, err := s.activityRepo.FindActivityByID(activityID)
	if err != nil || activity == nil {
		return nil, "", errors.New("activity not found")
	}

	regs, err := s.repo.ListByActivity(activityID)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, 0, len(regs))
	for _, reg := range regs {
		var name, studentID, grade, gender string
		if reg.Profile != nil {
			studentID = reg.Profile.StudentID
			gender = reg.Profile.Gender
			if reg.Profile.Grade != nil {
				grade = reg.Profile.Grade.Name
			}
		}
		if reg.Profile != nil && reg.Profile.User != nil {
			name = reg.Profile.User.Name
		}
		session := ""
		if reg.Session != nil {
			session = fmt.Sprintf("%s %s-%s",
				reg.Session.Date.Format("2006-01-02"),
				reg.Session.StartTime, reg.Session.EndTime)
		}
		rows = append(rows, []string{
			name,
			studentID,
			activity.Title,
			session,
			grade,
			reg.ClassName,
			gender,
			reg.Phone,
			reg.HeadteacherName,
			reg.CreatedAt.Format("2006-01-02 15:04:05"),
			reg.Status,
		})
	}

	buf, err := xlsx.WriteSheet(exportHeaders, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("registrations_%d_%s.xlsx", activityID, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func (s *registrationService) publishRegistrationEvent(key string, reg *domain.Registration, studentID, title string) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(dto.RegistrationEvent{
		RegistrationID: reg.ID,
		StudentID:      studentID,
		ActivityID:     reg.ActivityID,
		ActivityTitle:  title,
		Status:         reg.Status,
	})
	if err != nil {
		return
	}
	_ = s.producer.PublishMessage([]byte(key), payload)
}
