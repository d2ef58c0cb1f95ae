package request

import "time"

type EventRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=255"`
	Description string     `json:"description" validate:"required"`
	EventType   string     `json:"event_type" validate:"required,max=100"`
	Venue       string     `json:"venue" validate:"required,max=255"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	IsActive    *bool      `json:"is_active"`
	IsFeatured  bool       `json:"is_featured"`
}

type EventUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string    `json:"description"`
	EventType   *string    `json:"event_type" validate:"omitempty,max=100"`
	Venue       *string    `json:"venue" validate:"omitempty,max=255"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	IsActive    *bool      `json:"is_active"`
	IsFeatured  *bool      `json:"is_featured"`
}

type EventListQuery struct {
	PaginatedRequest
	Search     string
	EventType  *string
	IsActive   *bool
	IsFeatured *bool
	StartsFrom *time.Time
	StartsTo   *time.Time
	SortBy     string
	SortDesc   bool
}
