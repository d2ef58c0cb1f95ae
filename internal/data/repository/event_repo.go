package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"news-cms/internal/data/entity"
	"news-cms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventFilter struct {
	Search     string
	EventType  *string
	IsActive   *bool
	IsFeatured *bool
	StartsFrom *time.Time
	StartsTo   *time.Time
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context, f EventFilter) ([]*entity.Event, error)
	Count(ctx context.Context, f EventFilter) (int64, error)
	Update(ctx context.Context, event *entity.Event) error
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

const eventColumns = `id, title, description, event_type, venue, starts_at, ends_at,
       is_active, is_featured, created_at, updated_at`

var eventSortColumns = map[string]string{
	"title":      "title",
	"starts_at":  "starts_at",
	"created_at": "created_at",
}

var eventFlagColumns = map[string]bool{
	"is_active":   true,
	"is_featured": true,
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventType,
		&e.Venue,
		&e.StartsAt,
		&e.EndsAt,
		&e.IsActive,
		&e.IsFeatured,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, event_type, venue, starts_at,
		                    ends_at, is_active, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.EventType,
		event.Venue,
		event.StartsAt,
		event.EndsAt,
		event.IsActive,
		event.IsFeatured,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("title", event.Title),
		)
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func buildEventWhere(f EventFilter, args *[]any) string {
	var conds []string

	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR venue ILIKE $%d)", n, n, n))
	}
	if f.EventType != nil {
		*args = append(*args, *f.EventType)
		conds = append(conds, fmt.Sprintf("event_type = $%d", len(*args)))
	}
	if f.IsActive != nil {
		*args = append(*args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(*args)))
	}
	if f.IsFeatured != nil {
		*args = append(*args, *f.IsFeatured)
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(*args)))
	}
	if f.StartsFrom != nil {
		*args = append(*args, *f.StartsFrom)
		conds = append(conds, fmt.Sprintf("starts_at >= $%d", len(*args)))
	}
	if f.StartsTo != nil {
		*args = append(*args, *f.StartsTo)
		conds = append(conds, fmt.Sprintf("starts_at <= $%d", len(*args)))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func (r *eventRepository) FindAll(ctx context.Context, f EventFilter) ([]*entity.Event, error) {
	args := []any{}
	query := `SELECT ` + eventColumns + ` FROM events` + buildEventWhere(f, &args)

	sortCol, ok := eventSortColumns[f.SortBy]
	if !ok {
		sortCol = "starts_at"
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, dir, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("find all events: %w", err)
	}
	defer rows.Close()

	var items []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return items, nil
}

func (r *eventRepository) Count(ctx context.Context, f EventFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM events` + buildEventWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count events", zap.Error(err))
		return 0, fmt.Errorf("count events: %w", err)
	}

	return total, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, event_type = $4, venue = $5,
		    starts_at = $6, ends_at = $7, is_active = $8, is_featured = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.EventType,
		event.Venue,
		event.StartsAt,
		event.EndsAt,
		event.IsActive,
		event.IsFeatured,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", event.ID.String())
	}

	return nil
}

func (r *eventRepository) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	if !eventFlagColumns[flag] {
		return nil, fmt.Errorf("unknown event flag %q", flag)
	}

	query := fmt.Sprintf(`UPDATE events SET %s = NOT %s, updated_at = NOW()
		WHERE id = $1 RETURNING %s`, flag, flag, flag)

	var value bool
	err := r.db.QueryRow(ctx, query, id).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle event flag",
			zap.Error(err),
			zap.String("event_id", id.String()),
			zap.String("flag", flag),
		)
		return nil, fmt.Errorf("toggle event %s %s: %w", flag, id.String(), err)
	}

	return &value, nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s not found", id.String())
	}

	r.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}
