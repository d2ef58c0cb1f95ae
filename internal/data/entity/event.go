package entity

import "time"

type Event struct {
	Base
	Title       string     `db:"title"`
	Description string     `db:"description"`
	EventType   string     `db:"event_type"`
	Venue       string     `db:"venue"`
	StartsAt    time.Time  `db:"starts_at"`
	EndsAt      *time.Time `db:"ends_at"`
	IsActive    bool       `db:"is_active"`
	IsFeatured  bool       `db:"is_featured"`
}
