package repository

import (
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"gorm.io/gorm"
)

type GradeRepository interface {
	FindOrCreate(name string) (*domain.Grade, error)
	ListGrades() ([]domain.Grade, error)
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) FindOrCreate(name string) (*domain.Grade, error) {
	var grade domain.Grade
	err := r.db.Where(domain.Grade{Name: name}).FirstOrCreate(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) ListGrades() ([]domain.Grade, error) {
	var grades []domain.Grade
	if err := r.db.Order("name ASC").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}
