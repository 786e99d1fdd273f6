package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/kotche/notes/infrastructure/tracing"
	"github.com/kotche/notes/internal/model"
	_ "github.com/lib/pq"
	"time"

	"github.com/Masterminds/squirrel"
)

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) GetNote(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	note := &model.Note{}
	query := `SELECT id, title, description, "timestamp" FROM notes WHERE id = $1`
	err := d.db.QueryRowContext(ctx, query, noteID).Scan(&note.ID, &note.Title, &note.Description, &note.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note '%d': %w", noteID, err)
	}
	return note, nil
}

func (d *DefaultRepository) ListNotes(ctx context.Context) ([]model.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "ListNotes_repo")
	defer span.End()

	queryBuilder := squirrel.
		Select("id",
			"title",
			"description",
			`"timestamp"`).
		From("notes").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Description, &note.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (d *DefaultRepository) CreateNote(ctx context.Context, note model.Note) (model.NoteID, error) {
	query := `
		INSERT INTO notes (title, description, "timestamp", created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var noteID model.NoteID
	err := d.db.QueryRowContext(ctx, query, note.Title, note.Description, note.Timestamp).Scan(&noteID)
	if err != nil {
		return 0, fmt.Errorf("failed to create note: %w", err)
	}

	return noteID, nil
}

// UpdateNote replaces every payload column. It does not report a missing id;
// callers check existence first.
func (d *DefaultRepository) UpdateNote(ctx context.Context, noteID model.NoteID, note model.Note) error {
	query := `
		UPDATE notes SET title = $1, description = $2, "timestamp" = $3 WHERE id = $4
	`

	if _, err := d.db.ExecContext(ctx, query, note.Title, note.Description, note.Timestamp, noteID); err != nil {
		return fmt.Errorf("failed to update note %d: %w", noteID, err)
	}

	return nil
}

// DeleteNote removes the row. It does not report a missing id; callers check
// existence first.
func (d *DefaultRepository) DeleteNote(ctx context.Context, noteID model.NoteID) error {
	query := `
		DELETE FROM notes WHERE id = $1
	`

	if _, err := d.db.ExecContext(ctx, query, noteID); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", noteID, err)
	}

	return nil
}

func (d *DefaultRepository) ReceiveReminders(ctx context.Context, startTime, endTime time.Time) ([]model.Note, error) {
	queryBuilder := squirrel.
		Select("id",
			"title",
			"description",
			`"timestamp"`).
		From("notes").
		Where(`"timestamp" >= ? AND "timestamp" < ?`, startTime, endTime).
		OrderBy(`"timestamp"`).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Description, &note.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}
