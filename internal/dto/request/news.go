package request

import "time"

type NewsRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Content    string `json:"content" validate:"required"`
	Category   string `json:"category" validate:"required,max=100"`
	IsActive   *bool  `json:"is_active"`
	IsTrending bool   `json:"is_trending"`
}

// NewsUpdateRequest is a partial update; only non-nil fields are applied.
type NewsUpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=3,max=255"`
	Content    *string `json:"content"`
	Category   *string `json:"category" validate:"omitempty,max=100"`
	IsActive   *bool   `json:"is_active"`
	IsTrending *bool   `json:"is_trending"`
}

type NewsListQuery struct {
	PaginatedRequest
	Search      string
	Category    *string
	IsActive    *bool
	IsTrending  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortDesc    bool
}
