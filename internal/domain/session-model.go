package domain

import (
	"time"

	"gorm.io/gorm"
)

// Session is one time slot within an activity.
type Session struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActivityID uint      `gorm:"index;not null" json:"activity_id"`
	Date       time.Time `gorm:"not null" json:"date"`
	StartTime  string    `gorm:"type:varchar(5);not null" json:"start_time"` // "HH:MM"
	EndTime    string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Location   string    `gorm:"type:varchar(200)" json:"location"`

	// 0 = unlimited.
	Capacity int `gorm:"not null;default:0" json:"capacity"`

	gorm.Model
}

// IsFull reports whether the slot is at capacity given its current
// occupancy (count of non-rejected registrations). Capacity 0 never fills.
func (s *Session) IsFull(occupancy int) bool {
	return s.Capacity > 0 && occupancy >= s.Capacity
}
