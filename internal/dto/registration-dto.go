package dto

import "time"

type RegisterRequest struct {
	SessionID       *uint  `json:"session_id,omitempty"`
	Phone           string `json:"phone" validate:"required,max=20"`
	ClassName       string `json:"class_name" validate:"required,max=50"`
	HeadteacherName string `json:"headteacher_name" validate:"required,max=50"`
}

type RegistrationResponse struct {
	ID            uint      `json:"id"`
	ActivityID    uint      `json:"activity_id"`
	ActivityTitle string    `json:"activity_title,omitempty"`
	SessionID     *uint     `json:"session_id,omitempty"`
	Status        string    `json:"status"`
	HoursAwarded  int       `json:"hours_awarded"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// Batch admin actions take explicit id lists.
type BatchStatusRequest struct {
	IDs    []uint `json:"ids" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type BatchHoursRequest struct {
	IDs   []uint `json:"ids" validate:"required,min=1"`
	Hours int    `json:"hours" validate:"gte=0"`
}

type RecomputeXPRequest struct {
	ProfileIDs []uint `json:"profile_ids" validate:"required,min=1"`
}
