package dto

import "time"

type SessionResponse struct {
	ID        uint      `json:"id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	Occupancy int       `json:"occupancy"`
	IsFull    bool      `json:"is_full"`
}

type ActivityResponse struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	HoursReward       int        `json:"hours_reward"`
	MinXP             int        `json:"min_xp"`
	MaxXP             int        `json:"max_xp"`
	GenderRestriction string     `json:"gender_restriction"`
	Grades            []string   `json:"grades,omitempty"`
	Capacity          int        `json:"capacity"`
}

type AnnouncementResponse struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityListResponse struct {
	Activities    []ActivityResponse     `json:"activities"`
	Announcements []AnnouncementResponse `json:"announcements"`
}

type ActivityDetailResponse struct {
	ActivityResponse
	Sessions      []SessionResponse `json:"sessions"`
	ApprovedCount int               `json:"approved_count"`
	IsFull        bool              `json:"is_full"`
	Registered    bool              `json:"registered"`
	Eligible      bool              `json:"eligible"`
}

type CreateActivityRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description"`
	Status            string     `json:"status" validate:"omitempty,oneof=open in_progress closed"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	HoursReward       int        `json:"hours_reward" validate:"gte=0"`
	MinXP             int        `json:"min_xp" validate:"gte=0"`
	MaxXP             int        `json:"max_xp" validate:"gte=0"`
	GenderRestriction string     `json:"gender_restriction" validate:"omitempty,oneof=none male female"`
	GradeNames        []string   `json:"grade_names,omitempty"`
	Capacity          int        `json:"capacity" validate:"gte=0"`
}

type CreateSessionRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	Location  string    `json:"location" validate:"max=200"`
	Capacity  int       `json:"capacity" validate:"gte=0"`
}

type CreateTagRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	XPBonus int    `json:"xp_bonus" validate:"gte=0"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}
