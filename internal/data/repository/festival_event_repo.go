package repository

import (
	"context"
	"fmt"
	"strings"

	"news-cms/internal/data/entity"
	"news-cms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FestivalEventFilter struct {
	Search    string
	DayNumber *int
	IsActive  *bool
	SortBy    string
	SortDesc  bool
	Limit     int
	Offset    int
}

type FestivalEventRepository interface {
	Create(ctx context.Context, event *entity.FestivalEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FestivalEvent, error)
	FindAll(ctx context.Context, f FestivalEventFilter) ([]*entity.FestivalEvent, error)
	Count(ctx context.Context, f FestivalEventFilter) (int64, error)
	Update(ctx context.Context, event *entity.FestivalEvent) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type festivalEventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFestivalEventRepository(db database.PgxIface, log *zap.Logger) FestivalEventRepository {
	return &festivalEventRepository{
		db:  db,
		log: log.With(zap.String("repository", "festival_event")),
	}
}

const festivalEventColumns = `id, title, description, day_number, starts_at, venue,
       display_order, is_active, created_at, updated_at`

var festivalEventSortColumns = map[string]string{
	"day_number":    "day_number",
	"starts_at":     "starts_at",
	"display_order": "display_order",
	"created_at":    "created_at",
}

func scanFestivalEvent(row pgx.Row) (*entity.FestivalEvent, error) {
	var e entity.FestivalEvent
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.DayNumber,
		&e.StartsAt,
		&e.Venue,
		&e.DisplayOrder,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *festivalEventRepository) Create(ctx context.Context, event *entity.FestivalEvent) error {
	query := `
		INSERT INTO festival_events (id, title, description, day_number, starts_at,
		                             venue, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.DayNumber,
		event.StartsAt,
		event.Venue,
		event.DisplayOrder,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create festival event",
			zap.Error(err),
			zap.String("title", event.Title),
		)
		return fmt.Errorf("create festival event: %w", err)
	}

	return nil
}

func (r *festivalEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FestivalEvent, error) {
	query := `SELECT ` + festivalEventColumns + ` FROM festival_events WHERE id = $1`

	event, err := scanFestivalEvent(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find festival event by ID",
			zap.Error(err),
			zap.String("festival_event_id", id.String()),
		)
		return nil, fmt.Errorf("find festival event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func buildFestivalEventWhere(f FestivalEventFilter, args *[]any) string {
	var conds []string

	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR venue ILIKE $%d)", n, n, n))
	}
	if f.DayNumber != nil {
		*args = append(*args, *f.DayNumber)
		conds = append(conds, fmt.Sprintf("day_number = $%d", len(*args)))
	}
	if f.IsActive != nil {
		*args = append(*args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(*args)))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func (r *festivalEventRepository) FindAll(ctx context.Context, f FestivalEventFilter) ([]*entity.FestivalEvent, error) {
	args := []any{}
	query := `SELECT ` + festivalEventColumns + ` FROM festival_events` + buildFestivalEventWhere(f, &args)

	sortCol, ok := festivalEventSortColumns[f.SortBy]
	if !ok {
		sortCol = "display_order"
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, dir, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list festival events", zap.Error(err))
		return nil, fmt.Errorf("find all festival events: %w", err)
	}
	defer rows.Close()

	var items []*entity.FestivalEvent
	for rows.Next() {
		e, err := scanFestivalEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan festival event row", zap.Error(err))
			return nil, fmt.Errorf("scan festival event row: %w", err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate festival event rows: %w", err)
	}

	return items, nil
}

func (r *festivalEventRepository) Count(ctx context.Context, f FestivalEventFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM festival_events` + buildFestivalEventWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count festival events", zap.Error(err))
		return 0, fmt.Errorf("count festival events: %w", err)
	}

	return total, nil
}

func (r *festivalEventRepository) Update(ctx context.Context, event *entity.FestivalEvent) error {
	query := `
		UPDATE festival_events
		SET title = $2, description = $3, day_number = $4, starts_at = $5,
		    venue = $6, display_order = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.DayNumber,
		event.StartsAt,
		event.Venue,
		event.DisplayOrder,
		event.IsActive,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update festival event",
			zap.Error(err),
			zap.String("festival_event_id", event.ID.String()),
		)
		return fmt.Errorf("update festival event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("festival event %s not found", event.ID.String())
	}

	return nil
}

func (r *festivalEventRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	query := `UPDATE festival_events SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1 RETURNING is_active`

	var value bool
	err := r.db.QueryRow(ctx, query, id).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle festival event active",
			zap.Error(err),
			zap.String("festival_event_id", id.String()),
		)
		return nil, fmt.Errorf("toggle festival event active %s: %w", id.String(), err)
	}

	return &value, nil
}

func (r *festivalEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM festival_events WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete festival event",
			zap.Error(err),
			zap.String("festival_event_id", id.String()),
		)
		return fmt.Errorf("delete festival event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("festival event %s not found", id.String())
	}

	r.log.Info("Festival event deleted", zap.String("festival_event_id", id.String()))
	return nil
}
