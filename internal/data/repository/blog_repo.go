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

type BlogFilter struct {
	Search      string
	Category    *string
	IsActive    *bool
	IsFeatured  *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortDesc    bool
	Limit       int
	Offset      int
}

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	FindAll(ctx context.Context, f BlogFilter) ([]*entity.Blog, error)
	Count(ctx context.Context, f BlogFilter) (int64, error)
	Update(ctx context.Context, blog *entity.Blog) error
	ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog")),
	}
}

const blogColumns = `id, title, content, category, author, pdf_url, is_active,
       is_featured, created_at, updated_at`

var blogSortColumns = map[string]string{
	"title":      "title",
	"category":   "category",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

var blogFlagColumns = map[string]bool{
	"is_active":   true,
	"is_featured": true,
}

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	var b entity.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Content,
		&b.Category,
		&b.Author,
		&b.PDFURL,
		&b.IsActive,
		&b.IsFeatured,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	query := `
		INSERT INTO blogs (id, title, content, category, author, pdf_url,
		                   is_active, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Category,
		blog.Author,
		blog.PDFURL,
		blog.IsActive,
		blog.IsFeatured,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blog",
			zap.Error(err),
			zap.String("title", blog.Title),
		)
		return fmt.Errorf("create blog: %w", err)
	}

	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog by ID",
			zap.Error(err),
			zap.String("blog_id", id.String()),
		)
		return nil, fmt.Errorf("find blog by ID %s: %w", id.String(), err)
	}

	return blog, nil
}

func buildBlogWhere(f BlogFilter, args *[]any) string {
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
	if f.IsFeatured != nil {
		*args = append(*args, *f.IsFeatured)
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(*args)))
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

func (r *blogRepository) FindAll(ctx context.Context, f BlogFilter) ([]*entity.Blog, error) {
	args := []any{}
	query := `SELECT ` + blogColumns + ` FROM blogs` + buildBlogWhere(f, &args)

	sortCol, ok := blogSortColumns[f.SortBy]
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
		r.log.Error("Failed to list blogs", zap.Error(err))
		return nil, fmt.Errorf("find all blogs: %w", err)
	}
	defer rows.Close()

	var items []*entity.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			r.log.Error("Failed to scan blog row", zap.Error(err))
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate blog rows: %w", err)
	}

	return items, nil
}

func (r *blogRepository) Count(ctx context.Context, f BlogFilter) (int64, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM blogs` + buildBlogWhere(f, &args)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count blogs", zap.Error(err))
		return 0, fmt.Errorf("count blogs: %w", err)
	}

	return total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, content = $3, category = $4, author = $5, pdf_url = $6,
		    is_active = $7, is_featured = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Category,
		blog.Author,
		blog.PDFURL,
		blog.IsActive,
		blog.IsFeatured,
		blog.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update blog",
			zap.Error(err),
			zap.String("blog_id", blog.ID.String()),
		)
		return fmt.Errorf("update blog %s: %w", blog.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog %s not found", blog.ID.String())
	}

	return nil
}

func (r *blogRepository) ToggleFlag(ctx context.Context, id uuid.UUID, flag string) (*bool, error) {
	if !blogFlagColumns[flag] {
		return nil, fmt.Errorf("unknown blog flag %q", flag)
	}

	query := fmt.Sprintf(`UPDATE blogs SET %s = NOT %s, updated_at = NOW()
		WHERE id = $1 RETURNING %s`, flag, flag, flag)

	var value bool
	err := r.db.QueryRow(ctx, query, id).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to toggle blog flag",
			zap.Error(err),
			zap.String("blog_id", id.String()),
			zap.String("flag", flag),
		)
		return nil, fmt.Errorf("toggle blog %s %s: %w", flag, id.String(), err)
	}

	return &value, nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blogs WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blog",
			zap.Error(err),
			zap.String("blog_id", id.String()),
		)
		return fmt.Errorf("delete blog %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog %s not found", id.String())
	}

	r.log.Info("Blog deleted", zap.String("blog_id", id.String()))
	return nil
}
