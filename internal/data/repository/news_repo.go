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

// NewsFilter narrows news listings. Nil fields are ignored.
type NewsFilter struct {
	Search      string
	Category    *string
	IsActive    *bool
	IsTrending  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortDesc    bool
	Limit       int
	Offset      int
}

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error)
	FindAll(ctx context.Context, f NewsFilter) ([]*entity.News, error)
	Count(ctx context.Context, f NewsFilter) (int64, error)
	Update(ctx context.Context, news *entity.News) error
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNewsRepository(db database.PgxIface, log *zap.Logger) NewsRepository {
	return &newsRepository{
		db:  db,
		log: log.With(zap.String("repository", "news")),
	}
}

const newsColumns = `id, title, content, category, image_url, is_active, is_trending,
       created_at, updated_at`

// newsSortColumns is the sort-field allow-list; anything else falls back
// to created_at.
var newsSortColumns = map[string]string{
	"title":      "title",
	"category":   "category",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// newsFlagColumns limits ToggleFlag to known boolean columns.
var newsFlagColumns = map[string]bool{
	"is_active":   true,
	"is_trending": true,
}

func scanNews(row pgx.Row) (*entity.News, error) {
	var n entity.News
	err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Content,
		&n.Category,
		&n.ImageURL,
		&n.IsActive,
		&n.IsTrending,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *newsRepository) Create(ctx context.Context, news *entity.News) error {
	query := `
		INSERT INTO news (id, title, content, category, image_url, is_active,
		                  is_trending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		news.ID,
		news.Title,
		news.Content,
		news.Category,
		news.ImageURL,
		news.IsActive,
		news.IsTrending,
		news.CreatedAt,
		news.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create news",
			zap.Error(err),
			zap.String("title", news.Title),
		)
		return fmt.Errorf("create news: %w", err)
	}

	return nil
}

func (r *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`

	news, err := scanNews(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find news by ID",
			zap.Error(err),
			zap.String("news_id", id.String()),
		)
		return nil, fmt.Errorf("find news by ID %s: %w", id.String(), err)
	}

	return news, nil
}

func buildNewsWhere(f NewsFilter, args *[]any) string {
	var conds []string

	if f.Search != "" {
		*args = append(*args, "%"+f.Search+"%")
		n := len(*args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}
	if f.Category != nil {
		*args = append(*args, *f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(*args)))
	}
	if f.IsActive != nil {
		*args = append(*args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(*args)))
	}
	if f.IsTrending != nil {
		*args = append(*args, *f.IsTrending)
		conds = append(conds, fmt.Sprintf("is_trending = $%d", len(*args)))
	}
	if f.CreatedFrom != nil {
		*args = append(*args, *f.CreatedFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(*args)))
	}
	if f.CreatedTo != nil {
		*args = append(*args, *f.CreatedTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(*args)))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func (r *newsRepository) FindAll(ctx context.Context, f NewsFilter) ([]*entity.News, error) {
	args := []any{}
	query := `SELECT ` + newsColumns + ` FROM news` + buildNewsWhere(f, &args)

	sortCol, ok := newsSortColumns[f.SortBy]
	if !ok {
		sortCol = "created_at"
		f.SortDesc = true
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, dir, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list news", zap.Error(err))
		return nil, fmt.Errorf("find all news: %w", err)
	}
	defer rows.Close()

	var items []*entity.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			r.log.Error("Failed to scan news row", zap.Error(err))
			return nil, fmt.Errorf("scan news row: %w", err)
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate news rows: %w", err)
	}

	return items, nil
}

func (r *newsRepository) Count(ctx context.Context, f NewsFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM news` + buildNewsWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count news", zap.Error(err))
		return 0, fmt.Errorf("count news: %w", err)
	}

	return total, nil
}

func (r *newsRepository) Update(ctx context.Context, news *entity.News) error {
	query := `
		UPDATE news
		SET title = $2, content = $3, category = $4, image_url = $5,
		    is_active = $6, is_trending = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		news.ID,
		news.Title,
		news.Content,
		news.Category,
		news.ImageURL,
		news.IsActive,
		news.IsTrending,
		news.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update news",
			zap.Error(err),
			zap.String("news_id", news.ID.String()),
		)
		return fmt.Errorf("update news %s: %w", news.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("news %s not found", news.ID.String())
	}

	return nil
}

// ToggleFlag flips one boolean column atomically and returns the new value,
// or nil when the record does not exist.
func (r *newsRepository) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	if !newsFlagColumns[flag] {
		return nil, fmt.Errorf("unknown news flag %q", flag)
	}

	query := fmt.Sprintf(`UPDATE news SET %s = NOT %s, updated_at = NOW()
		WHERE id = $1 RETURNING %s`, flag, flag, flag)

	var value bool
	err := r.db.QueryRow(ctx, query, id).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle news flag",
			zap.Error(err),
			zap.String("news_id", id.String()),
			zap.String("flag", flag),
		)
		return nil, fmt.Errorf("toggle news %s %s: %w", flag, id.String(), err)
	}

	return &value, nil
}

func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM news WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete news",
			zap.Error(err),
			zap.String("news_id", id.String()),
		)
		return fmt.Errorf("delete news %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("news %s not found", id.String())
	}

	r.log.Info("News deleted", zap.String("news_id", id.String()))
	return nil
}
