package entity

type News struct {
	Base
	Title      string  `db:"title"`
	Content    string  `db:"content"`
	Category   string  `db:"category"`
	ImageURL   *string `db:"image_url"`
	IsActive   bool    `db:"is_active"`
	IsTrending bool    `db:"is_trending"`
}
