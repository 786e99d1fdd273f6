package notes

import (
	"context"
	"github.com/kotche/notes/internal/model"
	"time"
)

type (
	Repository interface {
		GetNote(ctx context.Context, noteID model.NoteID) (*model.Note, error)
		ListNotes(ctx context.Context) ([]model.Note, error)
		CreateNote(ctx context.Context, note model.Note) (model.NoteID, error)
		UpdateNote(ctx context.Context, noteID model.NoteID, note model.Note) error
		DeleteNote(ctx context.Context, noteID model.NoteID) error
		ReceiveReminders(ctx context.Context, startTime, endTime time.Time) ([]model.Note, error)
	}
)
