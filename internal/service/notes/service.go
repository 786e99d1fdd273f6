package notes

import (
	"context"
	"github.com/kotche/notes/internal/model"
	"github.com/kotche/notes/internal/repository/notes"
	"time"
)

type DefaultService struct {
	repo notes.Repository
}

func NewDefaultService(repo notes.Repository) *DefaultService {
	return &DefaultService{repo: repo}
}

func (d *DefaultService) Create(ctx context.Context, note model.Note) (model.NoteID, error) {
	return d.repo.CreateNote(ctx, note)
}

func (d *DefaultService) Get(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	return d.repo.GetNote(ctx, noteID)
}

func (d *DefaultService) List(ctx context.Context) ([]model.Note, error) {
	return d.repo.ListNotes(ctx)
}

// Update checks existence before writing, since the repository write is
// silent on a missing id. The check and the write are not atomic.
func (d *DefaultService) Update(ctx context.Context, noteID model.NoteID, note model.Note) error {
	if _, err := d.repo.GetNote(ctx, noteID); err != nil {
		return err
	}

	return d.repo.UpdateNote(ctx, noteID, note)
}

// Delete returns the note as it was before deletion. Same existence-check
// caveat as Update.
func (d *DefaultService) Delete(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	note, err := d.repo.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if err = d.repo.DeleteNote(ctx, noteID); err != nil {
		return nil, err
	}

	return note, nil
}

func (d *DefaultService) ReceiveReminders(ctx context.Context, startTime, endTime time.Time) ([]model.Note, error) {
	return d.repo.ReceiveReminders(ctx, startTime, endTime)
}
