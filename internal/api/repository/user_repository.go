package repository

import (
	"context"
	"fmt"
	"strings"

	"villeh/bloglist/internal/api/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// var tracer = otel.Tracer("repository.api")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	ListAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User, password string) error
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// ListAll returns every user in insertion order.
func (r *sqliteUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.ListAll")
	defer span.End()

	users := []models.User{}
	query := `SELECT id, username, name, password_hash FROM users ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create hashes the password and inserts a new user. Uniqueness is
// enforced by the unique index on username, so two concurrent inserts
// of the same name cannot both succeed; the loser gets ErrUsernameTaken.
func (r *sqliteUserRepository) Create(ctx context.Context, user *models.User, password string) error {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)

	query := `INSERT INTO users (id, username, name, password_hash) VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, user.ID, user.Username, user.Name, user.PasswordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
