package repository

import (
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type TagRepository interface {
	CreateTag(tag *domain.Tag) error
	ListTags() ([]domain.Tag, error)

	// FindByNames resolves names case-insensitively; unknown names are
	// simply absent from the result.
	FindByNames(names []string) ([]domain.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CreateTag(tag *domain.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) ListTags() ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByNames(names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(n))
	}

	var tags []domain.Tag
	if err := r.db.Where("LOWER(name) IN ?", lowered).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
