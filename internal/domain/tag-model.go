package domain

import "gorm.io/gorm"

// Tag is a label on a profile granting a fixed experience bonus,
// e.g. a leadership role. Shared across profiles.
type Tag struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	XPBonus int    `gorm:"not null;default:0" json:"xp_bonus"`
	gorm.Model
}
