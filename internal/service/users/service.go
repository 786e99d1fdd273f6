package users

import (
	"context"
	"fmt"
	"github.com/kotche/notes/internal/model"
	"github.com/kotche/notes/internal/repository/users"
	"github.com/kotche/notes/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type DefaultService struct {
	repo users.Repository
}

func NewDefaultService(repo users.Repository) *DefaultService {
	return &DefaultService{repo: repo}
}

// Register persists a validated registration payload. The password is hashed
// here, on the way to storage; the validated schema never carries a hash.
func (d *DefaultService) Register(ctx context.Context, user validation.UserCreate) (*model.User, error) {
	taken, err := d.repo.UsernameTaken(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, model.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created := model.User{
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		Description: user.Description,
		IsActive:    true,
	}

	userID, err := d.repo.CreateUser(ctx, created, string(hash))
	if err != nil {
		return nil, err
	}

	created.ID = userID
	return &created, nil
}
