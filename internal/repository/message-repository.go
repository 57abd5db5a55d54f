package repository

import (
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type MessageRepository interface {
	CreateMessage(msg *domain.Message) error
	ListVisible(limit int) ([]domain.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) ListVisible(limit int) ([]domain.Message, error) {
	var msgs []domain.Message
	tx := r.db.Preload("User").
		Where("visible = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
