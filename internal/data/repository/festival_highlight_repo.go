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

type FestivalHighlightFilter struct {
	Search     string
	IsActive   *bool
	IsFeatured *bool
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

type FestivalHighlightRepository interface {
	Create(ctx context.Context, highlight *entity.FestivalHighlight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FestivalHighlight, error)
	FindAll(ctx context.Context, f FestivalHighlightFilter) ([]*entity.FestivalHighlight, error)
	Count(ctx context.Context, f FestivalHighlightFilter) (int64, error)
	Update(ctx context.Context, highlight *entity.FestivalHighlight) error
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type festivalHighlightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFestivalHighlightRepository(db database.PgxIface, log *zap.Logger) FestivalHighlightRepository {
	return &festivalHighlightRepository{
		db:  db,
		log: log.With(zap.String("repository", "festival_highlight")),
	}
}

const festivalHighlightColumns = `id, title, description, icon, display_order,
       is_active, is_featured, created_at, updated_at`

var festivalHighlightSortColumns = map[string]string{
	"display_order": "display_order",
	"title":         "title",
	"created_at":    "created_at",
}

var festivalHighlightFlagColumns = map[string]bool{
	"is_active":   true,
	"is_featured": true,
}

func scanFestivalHighlight(row pgx.Row) (*entity.FestivalHighlight, error) {
	var h entity.FestivalHighlight
	err := row.Scan(
		&h.ID,
		&h.Title,
		&h.Description,
		&h.Icon,
		&h.DisplayOrder,
		&h.IsActive,
		&h.IsFeatured,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *festivalHighlightRepository) Create(ctx context.Context, highlight *entity.FestivalHighlight) error {
	query := `
		INSERT INTO festival_highlights (id, title, description, icon, display_order,
		                                 is_active, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		highlight.ID,
		highlight.Title,
		highlight.Description,
		highlight.Icon,
		highlight.DisplayOrder,
		highlight.IsActive,
		highlight.IsFeatured,
		highlight.CreatedAt,
		highlight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create festival highlight",
			zap.Error(err),
			zap.String("title", highlight.Title),
		)
		return fmt.Errorf("create festival highlight: %w", err)
	}

	return nil
}

func (r *festivalHighlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FestivalHighlight, error) {
	query := `SELECT ` + festivalHighlightColumns + ` FROM festival_highlights WHERE id = $1`

	highlight, err := scanFestivalHighlight(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find festival highlight by ID",
			zap.Error(err),
			zap.String("festival_highlight_id", id.String()),
		)
		return nil, fmt.Errorf("find festival highlight by ID %s: %w", id.String(), err)
	}

	return highlight, nil
}

func buildFestivalHighlightWhere(f FestivalHighlightFilter, args *[]any) string {
	var conds []string

	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if f.IsActive != nil {
		*args = append(*args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(*args)))
	}
	if f.IsFeatured != nil {
		*args = append(*args, *f.IsFeatured)
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(*args)))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func (r *festivalHighlightRepository) FindAll(ctx context.Context, f FestivalHighlightFilter) ([]*entity.FestivalHighlight, error) {
	args := []any{}
	query := `SELECT ` + festivalHighlightColumns + ` FROM festival_highlights` + buildFestivalHighlightWhere(f, &args)

	sortCol, ok := festivalHighlightSortColumns[f.SortBy]
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
		r.log.Error("Failed to list festival highlights", zap.Error(err))
		return nil, fmt.Errorf("find all festival highlights: %w", err)
	}
	defer rows.Close()

	var items []*entity.FestivalHighlight
	for rows.Next() {
		h, err := scanFestivalHighlight(rows)
		if err != nil {
			r.log.Error("Failed to scan festival highlight row", zap.Error(err))
			return nil, fmt.Errorf("scan festival highlight row: %w", err)
		}
		items = append(items, h)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate festival highlight rows: %w", err)
	}

	return items, nil
}

func (r *festivalHighlightRepository) Count(ctx context.Context, f FestivalHighlightFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM festival_highlights` + buildFestivalHighlightWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count festival highlights", zap.Error(err))
		return 0, fmt.Errorf("count festival highlights: %w", err)
	}

	return total, nil
}

func (r *festivalHighlightRepository) Update(ctx context.Context, highlight *entity.FestivalHighlight) error {
	query := `
		UPDATE festival_highlights
		SET title = $2, description = $3, icon = $4, display_order = $5,
		    is_active = $6, is_featured = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		highlight.ID,
		highlight.Title,
		highlight.Description,
		highlight.Icon,
		highlight.DisplayOrder,
		highlight.IsActive,
		highlight.IsFeatured,
		highlight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update festival highlight",
			zap.Error(err),
			zap.String("festival_highlight_id", highlight.ID.String()),
		)
		return fmt.Errorf("update festival highlight %s: %w", highlight.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("festival highlight %s not found", highlight.ID.String())
	}

	return nil
}

func (r *festivalHighlightRepository) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	if !festivalHighlightFlagColumns[flag] {
		return nil, fmt.Errorf("unknown festival highlight flag %q", flag)
	}

	query := fmt.Sprintf(`UPDATE festival_highlights SET %s = NOT %s, updated_at = NOW()
		WHERE id = $1 RETURNING %s`, flag, flag, flag)

	var value bool
	err := r.db.QueryRow(ctx, query, id).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle festival highlight flag",
			zap.Error(err),
			zap.String("festival_highlight_id", id.String()),
			zap.String("flag", flag),
		)
		return nil, fmt.Errorf("toggle festival highlight %s %s: %w", flag, id.String(), err)
	}

	return &value, nil
}

func (r *festivalHighlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM festival_highlights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete festival highlight",
			zap.Error(err),
			zap.String("festival_highlight_id", id.String()),
		)
		return fmt.Errorf("delete festival highlight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("festival highlight %s not found", id.String())
	}

	r.log.Info("Festival highlight deleted", zap.String("festival_highlight_id", id.String()))
	return nil
}
