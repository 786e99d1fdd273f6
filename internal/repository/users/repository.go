package users

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/kotche/notes/internal/model"
	_ "github.com/lib/pq"
)

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	err := d.db.QueryRowContext(ctx, query, username).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check username '%s' taken: %w", username, err)
	}
	return taken, nil
}

func (d *DefaultRepository) CreateUser(ctx context.Context, user model.User, passwordHash string) (model.UserID, error) {
	query := `
		INSERT INTO users (username, email, full_name, description, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	var userID model.UserID
	err := d.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.FullName, user.Description, passwordHash, user.IsActive).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return userID, nil
}
