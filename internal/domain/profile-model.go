package domain

import "gorm.io/gorm"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	RankRookie  = "rookie"
	RankSkilled = "skilled"
	RankVeteran = "veteran"
	RankElite   = "elite"
	RankLegend  = "legend"
)

// VolunteerProfile carries the accumulated service record. Level and rank
// are always derived from TotalXP, never stored.
type VolunteerProfile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User  `json:"user,omitempty"`
	StudentID string `gorm:"type:varchar(100);uniqueIndex;not null" json:"student_id"`
	ClassName string `gorm:"type:varchar(50)" json:"class_name"`
	Gender    string `gorm:"type:varchar(10);not null;default:male" json:"gender"`
	GradeID   *uint  `json:"grade_id,omitempty"`
	Grade     *Grade `json:"grade,omitempty"`

	TotalHours int `gorm:"not null;default:0" json:"total_hours"`
	TotalXP    int `gorm:"not null;default:0" json:"total_xp"`

	Tags []Tag `gorm:"many2many:profile_tags" json:"tags,omitempty"`

	gorm.Model
}

func (p *VolunteerProfile) Level() int {
	return p.TotalXP / 100
}

func (p *VolunteerProfile) Rank() string {
	level := p.Level()
	switch {
	case level <= 10:
		return RankRookie
	case level <= 30:
		return RankSkilled
	case level <= 60:
		return RankVeteran
	case level <= 100:
		return RankElite
	default:
		return RankLegend
	}
}

// RecomputedXP is the canonical experience value: accumulated hours plus
// the bonus of every tag attached to the profile. Tags must be preloaded.
func (p *VolunteerProfile) RecomputedXP() int {
	xp := p.TotalHours
	for _, t := range p.Tags {
		xp += t.XPBonus
	}
	return xp
}
