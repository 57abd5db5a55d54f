package dto

// Payloads published to the notification topic. Keys:
// registration.created, registration.status, hours.awarded.
type RegistrationEvent struct {
	RegistrationID uint   `json:"registration_id"`
	StudentID      string `json:"student_id"`
	ActivityID     uint   `json:"activity_id"`
	ActivityTitle  string `json:"activity_title"`
	Status         string `json:"status"`
}

type HoursAwardedEvent struct {
	StudentID  string `json:"student_id"`
	ActivityID uint   `json:"activity_id"`
	Hours      int    `json:"hours"`
}
