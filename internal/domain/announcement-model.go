package domain

import "gorm.io/gorm"

type Announcement struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	gorm.Model
}
