package dto

import "time"

type PostMessageRequest struct {
	Body      string `json:"body" validate:"required,max=256"`
	Color     string `json:"color" validate:"omitempty,oneof=red orange yellow green blue purple pink"`
	Anonymous bool   `json:"anonymous"`
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	Body      string    `json:"body"`
	Color     string    `json:"color"`
	Author    string    `json:"author,omitempty"` // empty when anonymous
	Anonymous bool      `json:"anonymous"`
	CreatedAt time.Time `json:"created_at"`
}
