package domain

import "gorm.io/gorm"

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// Registration links a profile to an activity and, optionally, one of its
// sessions. The composite unique index backs the one-registration-per-triple
// invariant; a partial index on (profile_id, activity_id) WHERE session_id
// IS NULL covers session-less rows, since Postgres treats NULLs as distinct.
// The duplicate check in the submission path is re-run inside the creating
// transaction so a race falls through to the indexes.
type Registration struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	ProfileID  uint  `gorm:"uniqueIndex:uniq_profile_activity_session;not null" json:"profile_id"`
	ActivityID uint  `gorm:"uniqueIndex:uniq_profile_activity_session;not null" json:"activity_id"`
	SessionID  *uint `gorm:"uniqueIndex:uniq_profile_activity_session" json:"session_id,omitempty"`

	Phone           string `gorm:"type:varchar(20);not null" json:"phone"`
	ClassName       string `gorm:"type:varchar(50);not null" json:"class_name"`
	HeadteacherName string `gorm:"type:varchar(50);not null" json:"headteacher_name"`

	Status string `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	// Hours actually awarded; may differ from the activity's nominal reward.
	HoursAwarded int `gorm:"not null;default:0" json:"hours_awarded"`

	Profile  *VolunteerProfile `json:"profile,omitempty"`
	Activity *Activity         `json:"activity,omitempty"`
	Session  *Session          `json:"session,omitempty"`

	gorm.Model
}
