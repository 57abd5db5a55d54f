package repository

import (
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	CreateProfile(profile *domain.VolunteerProfile) error
	FindByUserID(userID uint) (*domain.VolunteerProfile, error)
	FindByStudentID(studentID string) (*domain.VolunteerProfile, error)
	FindByIDs(ids []uint) ([]domain.VolunteerProfile, error)
	SaveProfile(profile *domain.VolunteerProfile) error
	ReplaceTags(profile *domain.VolunteerProfile, tags []domain.Tag) error

	// AddHours atomically increments both counters by the same delta.
	AddHours(profileID uint, delta int) error
	SetXP(profileID uint, xp int) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateProfile(profile *domain.VolunteerProfile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(userID uint) (*domain.VolunteerProfile, error) {
	var profile domain.VolunteerProfile
	err := r.db.Preload("Grade").Preload("Tags").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByStudentID(studentID string) (*domain.VolunteerProfile, error) {
	var profile domain.VolunteerProfile
	err := r.db.Preload("Grade").Preload("Tags").
		Where("student_id = ?", studentID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByIDs(ids []uint) ([]domain.VolunteerProfile, error) {
	var profiles []domain.VolunteerProfile
	if err := r.db.Preload("Tags").Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) SaveProfile(profile *domain.VolunteerProfile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) ReplaceTags(profile *domain.VolunteerProfile, tags []domain.Tag) error {
	return r.db.Model(profile).Association("Tags").Replace(tags)
}

func (r *profileRepository) AddHours(profileID uint, delta int) error {
	return r.db.Model(&domain.VolunteerProfile{}).
		Where("id = ?", profileID).
		Updates(map[string]any{
			"total_hours": gorm.Expr("total_hours + ?", delta),
			"total_xp":    gorm.Expr("total_xp + ?", delta),
		}).Error
}

func (r *profileRepository) SetXP(profileID uint, xp int) error {
	return r.db.Model(&domain.VolunteerProfile{}).
		Where("id = ?", profileID).
		Update("total_xp", xp).Error
}
