package domain

import "gorm.io/gorm"

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// User is the login account. The student id doubles as the login name;
// the service record itself lives on VolunteerProfile.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	StudentID    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"student_id"`
	Name         string `gorm:"type:varchar(100)" json:"name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"is_admin"`
	Status       string `gorm:"type:varchar(20);not null;default:active" json:"status"`
	gorm.Model
}
