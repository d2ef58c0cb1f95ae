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

type TransportationFilter struct {
	Search   string
	Mode     *string
	IsActive *bool
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

type TransportationRepository interface {
	Create(ctx context.Context, t *entity.Transportation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transportation, error)
	FindAll(ctx context.Context, f TransportationFilter) ([]*entity.Transportation, error)
	Count(ctx context.Context, f TransportationFilter) (int64, error)
	Update(ctx context.Context, t *entity.Transportation) error
	ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transportationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransportationRepository(db database.PgxIface, log *zap.Logger) TransportationRepository {
	return &transportationRepository{
		db:  db,
		log: log.With(zap.String("repository", "transportation")),
	}
}

const transportationColumns = `id, title, description, mode, route_info,
       display_order, is_active, created_at, updated_at`

var transportationSortColumns = map[string]string{
	"display_order": "display_order",
	"title":         "title",
	"mode":          "mode",
	"created_at":    "created_at",
}

func scanTransportation(row pgx.Row) (*entity.Transportation, error) {
	var t entity.Transportation
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Mode,
		&t.RouteInfo,
		&t.DisplayOrder,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transportationRepository) Create(ctx context.Context, t *entity.Transportation) error {
	query := `
		INSERT INTO transportation (id, title, description, mode, route_info,
		                            display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.Mode,
		t.RouteInfo,
		t.DisplayOrder,
		t.IsActive,
		t.CreatedAt,
		t.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create transportation",
			zap.Error(err),
			zap.String("title", t.Title),
		)
		return fmt.Errorf("create transportation: %w", err)
	}

	return nil
}

func (r *transportationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transportation, error) {
	query := `SELECT ` + transportationColumns + ` FROM transportation WHERE id = $1`

	t, err := scanTransportation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transportation by ID",
			zap.Error(err),
			zap.String("transportation_id", id.String()),
		)
		return nil, fmt.Errorf("find transportation by ID %s: %w", id.String(), err)
	}

	return t, nil
}

func buildTransportationWhere(f TransportationFilter, args *[]any) string {
	var conds []string

	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR route_info ILIKE $%d)", n, n, n))
	}
	if f.Mode != nil {
		*args = append(*args, *f.Mode)
		conds = append(conds, fmt.Sprintf("mode = $%d", len(*args)))
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

func (r *transportationRepository) FindAll(ctx context.Context, f TransportationFilter) ([]*entity.Transportation, error) {
	args := []any{}
	query := `SELECT ` + transportationColumns + ` FROM transportation` + buildTransportationWhere(f, &args)

	sortCol, ok := transportationSortColumns[f.SortBy]
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
		r.log.Error("Failed to list transportation", zap.Error(err))
		return nil, fmt.Errorf("find all transportation: %w", err)
	}
	defer rows.Close()

	var items []*entity.Transportation
	for rows.Next() {
		t, err := scanTransportation(rows)
		if err != nil {
			r.log.Error("Failed to scan transportation row", zap.Error(err))
			return nil, fmt.Errorf("scan transportation row: %w", err)
		}
		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate transportation rows: %w", err)
	}

	return items, nil
}

func (r *transportationRepository) Count(ctx context.Context, f TransportationFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM transportation` + buildTransportationWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count transportation", zap.Error(err))
		return 0, fmt.Errorf("count transportation: %w", err)
	}

	return total, nil
}

func (r *transportationRepository) Update(ctx context.Context, t *entity.Transportation) error {
	query := `
		UPDATE transportation
		SET title = $2, description = $3, mode = $4, route_info = $5,
		    display_order = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.Mode,
		t.RouteInfo,
		t.DisplayOrder,
		t.IsActive,
		t.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update transportation",
			zap.Error(err),
			zap.String("transportation_id", t.ID.String()),
		)
		return fmt.Errorf("update transportation %s: %w", t.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transportation %s not found", t.ID.String())
	}

	return nil
}

func (r *transportationRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*bool, error) {
	query := `UPDATE transportation SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1 RETURNING is_active`

	var value bool
	err := r.db.QueryRow(ctx, query, id).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle transportation active",
			zap.Error(err),
			zap.String("transportation_id", id.String()),
		)
		return nil, fmt.Errorf("toggle transportation active %s: %w", id.String(), err)
	}

	return &value, nil
}

func (r *transportationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transportation WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete transportation",
			zap.Error(err),
			zap.String("transportation_id", id.String()),
		)
		return fmt.Errorf("delete transportation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transportation %s not found", id.String())
	}

	r.log.Info("Transportation deleted", zap.String("transportation_id", id.String()))
	return nil
}
