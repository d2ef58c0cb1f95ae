package request

import "time"

type FestivalEventRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=255"`
	Description  string    `json:"description" validate:"required"`
	DayNumber    int       `json:"day_number" validate:"required,min=1"`
	StartsAt     time.Time `json:"starts_at" validate:"required"`
	Venue        string    `json:"venue" validate:"required,max=255"`
	DisplayOrder int       `json:"display_order"`
	IsActive     *bool     `json:"is_active"`
}

type FestivalEventUpdateRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=3,max=255"`
	Description  *string    `json:"description"`
	DayNumber    *int       `json:"day_number" validate:"omitempty,min=1"`
	StartsAt     *time.Time `json:"starts_at"`
	Venue        *string    `json:"venue" validate:"omitempty,max=255"`
	DisplayOrder *int       `json:"display_order"`
	IsActive     *bool      `json:"is_active"`
}

type FestivalEventListQuery struct {
	PaginatedRequest
	Search    string
	DayNumber *int
	IsActive  *bool
	SortBy    string
	SortDesc  bool
}

type FestivalHighlightRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description" validate:"required"`
	Icon         string `json:"icon" validate:"required,max=100"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
	IsFeatured   bool   `json:"is_featured"`
}

type FestivalHighlightUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon" validate:"omitempty,max=100"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
	IsFeatured   *bool   `json:"is_featured"`
}

type FestivalHighlightListQuery struct {
	PaginatedRequest
	Search     string
	IsActive   *bool
	IsFeatured *bool
	SortBy     string
	SortDesc   bool
}
