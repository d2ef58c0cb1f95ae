package response

import (
	"time"

	"news-cms/internal/data/entity"
)

type NewsResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	ImageURL   *string   `json:"image_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsTrending bool      `json:"is_trending"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromNews(n *entity.News) NewsResponse {
	return NewsResponse{
		ID:         n.ID.String(),
		Title:      n.Title,
		Content:    n.Content,
		Category:   n.Category,
		ImageURL:   n.ImageURL,
		IsActive:   n.IsActive,
		IsTrending: n.IsTrending,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func FromNewsList(items []*entity.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNews(n))
	}
	return out
}

type BlogResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Author     *string   `json:"author,omitempty"`
	PDFURL     *string   `json:"pdf_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromBlog(b *entity.Blog) BlogResponse {
	return BlogResponse{
		ID:         b.ID.String(),
		Title:      b.Title,
		Content:    b.Content,
		Category:   b.Category,
		Author:     b.Author,
		PDFURL:     b.PDFURL,
		IsActive:   b.IsActive,
		IsFeatured: b.IsFeatured,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromBlogs(items []*entity.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBlog(b))
	}
	return out
}

type EventResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventType   string     `json:"event_type"`
	Venue       string     `json:"venue"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	IsActive    bool       `json:"is_active"`
	IsFeatured  bool       `json:"is_featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromEvent(e *entity.Event) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		IsActive:    e.IsActive,
		IsFeatured:  e.IsFeatured,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromEvents(items []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEvent(e))
	}
	return out
}

type FestivalEventResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DayNumber    int       `json:"day_number"`
	StartsAt     time.Time `json:"starts_at"`
	Venue        string    `json:"venue"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromFestivalEvent(e *entity.FestivalEvent) FestivalEventResponse {
	return FestivalEventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		Description:  e.Description,
		DayNumber:    e.DayNumber,
		StartsAt:     e.StartsAt,
		Venue:        e.Venue,
		DisplayOrder: e.DisplayOrder,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromFestivalEvents(items []*entity.FestivalEvent) []FestivalEventResponse {
	out := make([]FestivalEventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromFestivalEvent(e))
	}
	return out
}

type FestivalHighlightResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromFestivalHighlight(h *entity.FestivalHighlight) FestivalHighlightResponse {
	return FestivalHighlightResponse{
		ID:           h.ID.String(),
		Title:        h.Title,
		Description:  h.Description,
		Icon:         h.Icon,
		DisplayOrder: h.DisplayOrder,
		IsActive:     h.IsActive,
		IsFeatured:   h.IsFeatured,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}
}

func FromFestivalHighlights(items []*entity.FestivalHighlight) []FestivalHighlightResponse {
	out := make([]FestivalHighlightResponse, 0, len(items))
	for _, h := range items {
		out = append(out, FromFestivalHighlight(h))
	}
	return out
}

type TransportationResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Mode         string    `json:"mode"`
	RouteInfo    string    `json:"route_info"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromTransportation(t *entity.Transportation) TransportationResponse {
	return TransportationResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		Mode:         t.Mode,
		RouteInfo:    t.RouteInfo,
		DisplayOrder: t.DisplayOrder,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromTransportations(items []*entity.Transportation) []TransportationResponse {
	out := make([]TransportationResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromTransportation(t))
	}
	return out
}
