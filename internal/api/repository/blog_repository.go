package repository

import (
	"context"
	"fmt"

	"villeh/bloglist/internal/api/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks villeh/bloglist/internal/api/repository BlogRepository,UserRepository

var tracer = otel.Tracer("repository.api")

// BlogRepository defines the interface for blog data operations.
type BlogRepository interface {
	ListAll(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id string) error
}

type sqliteBlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository creates a new SQLite-based BlogRepository.
func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &sqliteBlogRepository{db: db}
}

// ListAll returns every blog in insertion order.
func (r *sqliteBlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	ctx, span := tracer.Start(ctx, "BlogRepository.ListAll")
	defer span.End()

	blogs := []models.Blog{}
	query := `SELECT id, title, author, url, likes FROM blogs ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

// Create assigns a fresh id and inserts the blog.
func (r *sqliteBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	ctx, span := tracer.Start(ctx, "BlogRepository.Create")
	defer span.End()

	blog.ID = uuid.New().String()

	query := `INSERT INTO blogs (id, title, author, url, likes) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of the blog with the given id.
// Returns ErrBlogNotFound if no row matches.
func (r *sqliteBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	ctx, span := tracer.Start(ctx, "BlogRepository.Update")
	defer span.End()

	query := `UPDATE blogs SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, blog.Title, blog.Author, blog.URL, blog.Likes, blog.ID)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// Delete removes the blog with the given id. Deleting an absent id is
// not an error; the operation is idempotent.
func (r *sqliteBlogRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "BlogRepository.Delete")
	defer span.End()

	query := `DELETE FROM blogs WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	return nil
}
