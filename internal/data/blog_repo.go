package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/savelife/savelife-api/internal/data/pgxutil"
	"github.com/savelife/savelife-api/internal/domain/model"
)

// BlogRepo provides database operations for blog posts.
type BlogRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBlogRepo creates a new BlogRepo with real time provider.
func NewBlogRepo(db *sql.DB) *BlogRepo {
	return &BlogRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBlogRepoWithTimeProvider creates a new BlogRepo with a custom time provider (useful for tests).
func NewBlogRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BlogRepo {
	return &BlogRepo{DB: db, timeProvider: tp}
}

// Create inserts a new blog post attributed to the given author.
func (r *BlogRepo) Create(ctx context.Context, req *model.CreateBlogRequest, authorEmail string) (*model.Blog, error) {
	if req == nil {
		return nil, errors.New("create blog request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if authorEmail == "" {
		return nil, errors.New("author email is required")
	}

	var out model.Blog
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO blogs (
				id, title, image, content, status, author_email, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			) RETURNING id, title, image, content, status, author_email, created_at
		`,
			uuid.NewString(),
			req.Title,
			req.Image,
			req.Content,
			req.Status,
			model.NormalizeEmail(authorEmail),
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Blog])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return &out, nil
}

// ListPublished retrieves published posts with pagination, newest first.
func (r *BlogRepo) ListPublished(ctx context.Context, limit, offset int) ([]*model.Blog, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Blog
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, blogListPublishedQuery, model.BlogStatusPublished, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Blog])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	res := make([]*model.Blog, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

const blogListPublishedQuery = `
	SELECT id, title, image, content, status, author_email, created_at
	FROM blogs
	WHERE status = $1
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3`
