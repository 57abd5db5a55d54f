package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	ActivityStatusOpen       = "open"
	ActivityStatusInProgress = "in_progress"
	ActivityStatusClosed     = "closed"
)

// GenderNone means no gender restriction on an activity.
const GenderNone = "none"

type Activity struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"type:varchar(20);not null;default:open" json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`

	HoursReward int `gorm:"not null;default:0" json:"hours_reward"`

	// Eligibility bounds, inclusive on both ends.
	MinXP             int    `gorm:"not null;default:0" json:"min_xp"`
	MaxXP             int    `gorm:"not null;default:10000" json:"max_xp"`
	GenderRestriction string `gorm:"type:varchar(10);not null;default:none" json:"gender_restriction"`

	// Empty set = unrestricted.
	Grades []Grade `gorm:"many2many:activity_grades" json:"grades,omitempty"`

	// 0 = unlimited.
	Capacity int `gorm:"not null;default:0" json:"capacity"`

	Sessions []Session `json:"sessions,omitempty"`

	gorm.Model
}

// Eligible reports whether a profile passes every restriction on the
// activity: XP bounds, gender restriction, and allowed grades. It is a
// pure function of the two records; the activity's Grades and the
// profile's GradeID must be loaded by the caller.
func (a *Activity) Eligible(p *VolunteerProfile) bool {
	if p.TotalXP < a.MinXP || p.TotalXP > a.MaxXP {
		return false
	}
	if a.GenderRestriction != GenderNone && a.GenderRestriction != p.Gender {
		return false
	}
	if len(a.Grades) > 0 {
		if p.GradeID == nil {
			return false
		}
		for _, g := range a.Grades {
			if g.ID == *p.GradeID {
				return true
			}
		}
		return false
	}
	return true
}
