package repository

import (
	"errors"

	"news-cms/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User              UserRepository
	News              NewsRepository
	Blog              BlogRepository
	Event             EventRepository
	FestivalEvent     FestivalEventRepository
	FestivalHighlight FestivalHighlightRepository
	Transportation    TransportationRepository
	Subscriber        SubscriberRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:              NewUserRepository(db, log),
		News:              NewNewsRepository(db, log),
		Blog:              NewBlogRepository(db, log),
		Event:             NewEventRepository(db, log),
		FestivalEvent:     NewFestivalEventRepository(db, log),
		FestivalHighlight: NewFestivalHighlightRepository(db, log),
		Transportation:    NewTransportationRepository(db, log),
		Subscriber:        NewSubscriberRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
