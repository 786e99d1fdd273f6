package users

import (
	"context"
	"github.com/kotche/notes/internal/model"
	"github.com/kotche/notes/internal/validation"
)

type (
	Service interface {
		Register(ctx context.Context, user validation.UserCreate) (*model.User, error)
	}
)
