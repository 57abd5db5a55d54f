package repository

import (
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	CreateAnnouncement(a *domain.Announcement) error
	LatestAnnouncements(n int) ([]domain.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) CreateAnnouncement(a *domain.Announcement) error {
	return r.db.Create(a).Error
}

func (r *announcementRepository) LatestAnnouncements(n int) ([]domain.Announcement, error) {
	var items []domain.Announcement
	if err := r.db.Order("created_at DESC").Limit(n).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
