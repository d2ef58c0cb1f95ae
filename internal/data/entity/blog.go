package entity

type Blog struct {
	Base
	Title      string  `db:"title"`
	Content    string  `db:"content"`
	Category   string  `db:"category"`
	Author     *string `db:"author"`
	PDFURL     *string `db:"pdf_url"`
	IsActive   bool    `db:"is_active"`
	IsFeatured bool    `db:"is_featured"`
}
