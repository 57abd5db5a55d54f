package domain

import "gorm.io/gorm"

type Grade struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	gorm.Model
}
