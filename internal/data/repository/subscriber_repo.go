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

type SubscriberFilter struct {
	Search   string
	IsActive *bool
	Limit    int
	Offset   int
}

type SubscriberRepository interface {
	Create(ctx context.Context, sub *entity.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscriber, error)
	FindAll(ctx context.Context, f SubscriberFilter) ([]*entity.Subscriber, error)
	Count(ctx context.Context, f SubscriberFilter) (int64, error)
	// FindActivePage returns one fixed-size page of active subscribers for
	// broadcast fan-out, ordered by creation time for a stable walk.
	FindActivePage(ctx context.Context, limit, offset int) ([]*entity.Subscriber, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Update(ctx context.Context, sub *entity.Subscriber) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subscriberRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubscriberRepository(db database.PgxIface, log *zap.Logger) SubscriberRepository {
	return &subscriberRepository{
		db:  db,
		log: log.With(zap.String("repository", "subscriber")),
	}
}

const subscriberColumns = `id, email, first_name, last_name, is_active, created_at, updated_at`

func scanSubscriber(row pgx.Row) (*entity.Subscriber, error) {
	var s entity.Subscriber
	err := row.Scan(
		&s.ID,
		&s.Email,
		&s.FirstName,
		&s.LastName,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subscriberRepository) Create(ctx context.Context, sub *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, first_name, last_name, is_active,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		sub.ID,
		sub.Email,
		sub.FirstName,
		sub.LastName,
		sub.IsActive,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create subscriber",
			zap.Error(err),
			zap.String("email", sub.Email),
		)
		return fmt.Errorf("create subscriber %s: %w", sub.Email, err)
	}

	return nil
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE email = $1`

	sub, err := scanSubscriber(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscriber by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find subscriber by email %s: %w", email, err)
	}

	return sub, nil
}

func (r *subscriberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`

	sub, err := scanSubscriber(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscriber by ID",
			zap.Error(err),
			zap.String("subscriber_id", id.String()),
		)
		return nil, fmt.Errorf("find subscriber by ID %s: %w", id.String(), err)
	}

	return sub, nil
}

func buildSubscriberWhere(f SubscriberFilter, args *[]any) string {
	var conds []string

	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		conds = append(conds, fmt.Sprintf("(email ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)", n, n, n))
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

func (r *subscriberRepository) FindAll(ctx context.Context, f SubscriberFilter) ([]*entity.Subscriber, error) {
	args := []any{}
	query := `SELECT ` + subscriberColumns + ` FROM subscribers` + buildSubscriberWhere(f, &args)

	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list subscribers", zap.Error(err))
		return nil, fmt.Errorf("find all subscribers: %w", err)
	}
	defer rows.Close()

	var items []*entity.Subscriber
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			r.log.Error("Failed to scan subscriber row", zap.Error(err))
			return nil, fmt.Errorf("scan subscriber row: %w", err)
		}
		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate subscriber rows: %w", err)
	}

	return items, nil
}

func (r *subscriberRepository) Count(ctx context.Context, f SubscriberFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM subscribers` + buildSubscriberWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count subscribers", zap.Error(err))
		return 0, fmt.Errorf("count subscribers: %w", err)
	}

	return total, nil
}

func (r *subscriberRepository) FindActivePage(ctx context.Context, limit, offset int) ([]*entity.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers
		WHERE is_active = TRUE
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to page active subscribers", zap.Error(err))
		return nil, fmt.Errorf("page active subscribers: %w", err)
	}
	defer rows.Close()

	var items []*entity.Subscriber
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			r.log.Error("Failed to scan subscriber row", zap.Error(err))
			return nil, fmt.Errorf("scan subscriber row: %w", err)
		}
		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate subscriber rows: %w", err)
	}

	return items, nil
}

func (r *subscriberRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE subscribers SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		r.log.Error("Failed to set subscriber active",
			zap.Error(err),
			zap.String("subscriber_id", id.String()),
		)
		return fmt.Errorf("set subscriber active %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subscriber %s not found", id.String())
	}

	return nil
}

func (r *subscriberRepository) Update(ctx context.Context, sub *entity.Subscriber) error {
	query := `
		UPDATE subscribers
		SET email = $2, first_name = $3, last_name = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		sub.ID,
		sub.Email,
		sub.FirstName,
		sub.LastName,
		sub.IsActive,
		sub.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update subscriber",
			zap.Error(err),
			zap.String("subscriber_id", sub.ID.String()),
		)
		return fmt.Errorf("update subscriber %s: %w", sub.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subscriber %s not found", sub.ID.String())
	}

	return nil
}

func (r *subscriberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM subscribers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete subscriber",
			zap.Error(err),
			zap.String("subscriber_id", id.String()),
		)
		return fmt.Errorf("delete subscriber %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subscriber %s not found", id.String())
	}

	r.log.Info("Subscriber deleted", zap.String("subscriber_id", id.String()))
	return nil
}
