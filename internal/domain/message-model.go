package domain

import "gorm.io/gorm"

// MessageColors is the fixed palette a wall message may use.
var MessageColors = []string{"red", "orange", "yellow", "green", "blue", "purple", "pink"}

func ValidMessageColor(c string) bool {
	for _, v := range MessageColors {
		if v == c {
			return true
		}
	}
	return false
}

// Message is a public wall post. Create-only: no edit or delete path.
type Message struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Body      string `gorm:"type:varchar(256);not null" json:"body"`
	Color     string `gorm:"type:varchar(20);not null;default:blue" json:"color"`
	Visible   bool   `gorm:"not null;default:true" json:"visible"`
	Anonymous bool   `gorm:"not null;default:false" json:"anonymous"`

	User *User `json:"user,omitempty"`

	gorm.Model
}
