package entity

import "time"

// FestivalEvent is one scheduled slot in the festival program.
type FestivalEvent struct {
	Base
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	DayNumber    int       `db:"day_number"`
	StartsAt     time.Time `db:"starts_at"`
	Venue        string    `db:"venue"`
	DisplayOrder int       `db:"display_order"`
	IsActive     bool      `db:"is_active"`
}

// FestivalHighlight is a curated teaser shown on the festival landing page.
type FestivalHighlight struct {
	Base
	Title        string `db:"title"`
	Description  string `db:"description"`
	Icon         string `db:"icon"`
	DisplayOrder int    `db:"display_order"`
	IsActive     bool   `db:"is_active"`
	IsFeatured   bool   `db:"is_featured"`
}
