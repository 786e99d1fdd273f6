package notes

import (
	"context"
	"github.com/kotche/notes/internal/model"
	"time"
)

type (
	Service interface {
		Create(ctx context.Context, note model.Note) (model.NoteID, error)
		Get(ctx context.Context, noteID model.NoteID) (*model.Note, error)
		List(ctx context.Context) ([]model.Note, error)
		Update(ctx context.Context, noteID model.NoteID, note model.Note) error
		Delete(ctx context.Context, noteID model.NoteID) (*model.Note, error)
		ReceiveReminders(ctx context.Context, startTime, endTime time.Time) ([]model.Note, error)
	}
)
