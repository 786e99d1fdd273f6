package users

import (
	"context"
	"github.com/kotche/notes/internal/model"
)

type (
	Repository interface {
		UsernameTaken(ctx context.Context, username string) (bool, error)
		CreateUser(ctx context.Context, user model.User, passwordHash string) (model.UserID, error)
	}
)
