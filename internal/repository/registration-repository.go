package repository

import (
	"errors"
	"log"
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	// CreateChecked re-runs the duplicate, aggregate-capacity and
	// session-capacity checks inside one transaction and inserts the
	// registration only if they all still hold. It returns the matching
	// business error otherwise; nothing is persisted on rejection.
	CreateChecked(reg *domain.Registration, activityCapacity int) error

	ExistsForProfileActivity(profileID, activityID uint) (bool, error)
	CountApprovedByActivity(activityID uint) (int64, error)

	// CountActiveBySession counts non-rejected registrations in a slot.
	CountActiveBySession(sessionID uint) (int64, error)

	ListByProfile(profileID uint) ([]domain.Registration, error)
	ListByActivity(activityID uint) ([]domain.Registration, error)
	FindByIDs(ids []uint) ([]domain.Registration, error)

	UpdateStatus(ids []uint, status string) (int64, error)
	SetHoursAwarded(ids []uint, hours int) (int64, error)

	// AwardHours increments HoursAwarded and forces Approved on every
	// registration matching the (profile, activity) pair.
	AwardHours(profileID, activityID uint, delta int) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateChecked(reg *domain.Registration, activityCapacity int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&domain.Registration{}).
			Where("profile_id = ? AND activity_id = ?", reg.ProfileID, reg.ActivityID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return domain.ErrAlreadyRegistered
		}

		if activityCapacity > 0 {
			var approved int64
			if err := tx.Model(&domain.Registration{}).
				Where("activity_id = ? AND status = ?", reg.ActivityID, domain.RegistrationApproved).
				Count(&approved).Error; err != nil {
				return err
			}
			if approved >= int64(activityCapacity) {
				return domain.ErrActivityFull
			}
		}

		if reg.SessionID != nil {
			var session domain.Session
			if err := tx.First(&session, *reg.SessionID).Error; err != nil {
				return err
			}
			var occupancy int64
			if err := tx.Model(&domain.Registration{}).
				Where("session_id = ? AND status <> ?", *reg.SessionID, domain.RegistrationRejected).
				Count(&occupancy).Error; err != nil {
				return err
			}
			if session.IsFull(int(occupancy)) {
				return domain.ErrSessionFull
			}
		}

		return tx.Create(reg).Error
	})
	if err != nil {
		// A concurrent submit can slip past the in-tx check and hit the
		// unique index instead; report it as the same rejection.
		if strings.Contains(err.Error(), "uniq_profile_activity_session") {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *registrationRepository) ExistsForProfileActivity(profileID, activityID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Registration{}).
		Where("profile_id = ? AND activity_id = ?", profileID, activityID).
		Count(&count).Error
	return count > 0, err
}

func (r *registrationRepository) CountApprovedByActivity(activityID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Registration{}).
		Where("activity_id = ? AND status = ?", activityID, domain.RegistrationApproved).
		Count(&count).Error
	return count, err
}

func (r *registrationRepository) CountActiveBySession(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Registration{}).
		Where("session_id = ? AND status <> ?", sessionID, domain.RegistrationRejected).
		Count(&count).Error
	return count, err
}

func (r *registrationRepository) ListByProfile(profileID uint) ([]domain.Registration, error) {
	var regs []domain.Registration
	err := r.db.Preload("Activity").Preload("Session").
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) ListByActivity(activityID uint) ([]domain.Registration, error) {
	var regs []domain.Registration
	err := r.db.Preload("Profile").Preload("Profile.User").Preload("Profile.Grade").
		Preload("Activity").Preload("Session").
		Where("activity_id = ?", activityID).
		Order("created_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindByIDs(ids []uint) ([]domain.Registration, error) {
	var regs []domain.Registration
	if err := r.db.Preload("Profile").Where("id IN ?", ids).Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) UpdateStatus(ids []uint, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, errors.New("empty id list")
	}
	res := r.db.Model(&domain.Registration{}).
		Where("id IN ?", ids).
		Update("status", status)
	if res.Error != nil {
		log.Printf("update registration status error: %v", res.Error)
		return 0, errors.New("failed to update registration status")
	}
	return res.RowsAffected, nil
}

func (r *registrationRepository) SetHoursAwarded(ids []uint, hours int) (int64, error) {
	if len(ids) == 0 {
		return 0, errors.New("empty id list")
	}
	res := r.db.Model(&domain.Registration{}).
		Where("id IN ?", ids).
		Update("hours_awarded", hours)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *registrationRepository) AwardHours(profileID, activityID uint, delta int) error {
	return r.db.Model(&domain.Registration{}).
		Where("profile_id = ? AND activity_id = ?", profileID, activityID).
		Updates(map[string]any{
			"hours_awarded": gorm.Expr("hours_awarded + ?", delta),
			"status":        domain.RegistrationApproved,
		}).Error
}
