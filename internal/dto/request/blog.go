package request

import "time"

type BlogRequest struct {
	Title      string  `json:"title" validate:"required,min=3,max=255"`
	Content    string  `json:"content" validate:"required"`
	Category   string  `json:"category" validate:"required,max=100"`
	Author     *string `json:"author" validate:"omitempty,max=100"`
	IsActive   *bool   `json:"is_active"`
	IsFeatured bool    `json:"is_featured"`
}

type BlogUpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=3,max=255"`
	Content    *string `json:"content"`
	Category   *string `json:"category" validate:"omitempty,max=100"`
	Author     *string `json:"author" validate:"omitempty,max=100"`
	IsActive   *bool   `json:"is_active"`
	IsFeatured *bool   `json:"is_featured"`
}

type BlogListQuery struct {
	PaginatedRequest
	Search      string
	Category    *string
	IsActive    *bool
	IsFeatured  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortDesc    bool
}
