package repository

import (
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	CreateActivity(activity *domain.Activity) error
	SaveActivity(activity *domain.Activity) error
	FindActivityByID(id uint) (*domain.Activity, error)
	ReplaceGrades(activity *domain.Activity, grades []domain.Grade) error

	// ListOpen returns open activities newest-first, optionally filtered by a
	// case-insensitive substring over title and description.
	ListOpen(query string) ([]domain.Activity, error)

	CreateSession(session *domain.Session) error
	FindSessionByID(id uint) (*domain.Session, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateActivity(activity *domain.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) SaveActivity(activity *domain.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) FindActivityByID(id uint) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.Preload("Grades").Preload("Sessions").First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ReplaceGrades(activity *domain.Activity, grades []domain.Grade) error {
	return r.db.Model(activity).Association("Grades").Replace(grades)
}

func (r *activityRepository) ListOpen(query string) ([]domain.Activity, error) {
	tx := r.db.Preload("Sessions").
		Where("status = ?", domain.ActivityStatusOpen).
		Order("id DESC")
	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var activities []domain.Activity
	if err := tx.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) CreateSession(session *domain.Session) error {
	return r.db.Create(session).Error
}

func (r *activityRepository) FindSessionByID(id uint) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
