package notes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotche/notes/internal/model"
)

// stubRepository is an in-memory Repository for exercising the service.
type stubRepository struct {
	notes   map[model.NoteID]model.Note
	nextID  model.NoteID
	updates []model.NoteID
	deletes []model.NoteID
}

func newStubRepository() *stubRepository {
	return &stubRepository{notes: make(map[model.NoteID]model.Note)}
}

func (s *stubRepository) GetNote(_ context.Context, noteID model.NoteID) (*model.Note, error) {
	note, ok := s.notes[noteID]
	if !ok {
		return nil, model.ErrNoteNotFound
	}
	return &note, nil
}

func (s *stubRepository) ListNotes(_ context.Context) ([]model.Note, error) {
	notes := make([]model.Note, 0, len(s.notes))
	for id := model.NoteID(1); id <= s.nextID; id++ {
		if note, ok := s.notes[id]; ok {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (s *stubRepository) CreateNote(_ context.Context, note model.Note) (model.NoteID, error) {
	s.nextID++
	note.ID = s.nextID
	s.notes[note.ID] = note
	return note.ID, nil
}

func (s *stubRepository) UpdateNote(_ context.Context, noteID model.NoteID, note model.Note) error {
	s.updates = append(s.updates, noteID)
	if _, ok := s.notes[noteID]; !ok {
		return nil
	}
	note.ID = noteID
	s.notes[noteID] = note
	return nil
}

func (s *stubRepository) DeleteNote(_ context.Context, noteID model.NoteID) error {
	s.deletes = append(s.deletes, noteID)
	delete(s.notes, noteID)
	return nil
}

func (s *stubRepository) ReceiveReminders(_ context.Context, startTime, endTime time.Time) ([]model.Note, error) {
	var due []model.Note
	for id := model.NoteID(1); id <= s.nextID; id++ {
		note, ok := s.notes[id]
		if !ok || note.Timestamp == nil {
			continue
		}
		if !note.Timestamp.Before(startTime) && note.Timestamp.Before(endTime) {
			due = append(due, note)
		}
	}
	return due, nil
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	serv := NewDefaultService(newStubRepository())
	ctx := context.Background()

	first, err := serv.Create(ctx, model.Note{Title: "Foo"})
	require.NoError(t, err)
	second, err := serv.Create(ctx, model.Note{Title: "Foo"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGetMissingNote(t *testing.T) {
	serv := NewDefaultService(newStubRepository())

	_, err := serv.Get(context.Background(), 999)

	assert.ErrorIs(t, err, model.ErrNoteNotFound)
}

func TestUpdateChecksExistenceFirst(t *testing.T) {
	repo := newStubRepository()
	serv := NewDefaultService(repo)

	err := serv.Update(context.Background(), 999, model.Note{Title: "New"})

	assert.ErrorIs(t, err, model.ErrNoteNotFound)
	assert.Empty(t, repo.updates)
}

func TestUpdateExistingNote(t *testing.T) {
	repo := newStubRepository()
	serv := NewDefaultService(repo)
	ctx := context.Background()

	id, err := serv.Create(ctx, model.Note{Title: "Old"})
	require.NoError(t, err)

	require.NoError(t, serv.Update(ctx, id, model.Note{Title: "New"}))

	note, err := serv.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", note.Title)
}

func TestDeleteReturnsNoteBeforeDeletion(t *testing.T) {
	repo := newStubRepository()
	serv := NewDefaultService(repo)
	ctx := context.Background()

	description := "Bar"
	id, err := serv.Create(ctx, model.Note{Title: "Foo", Description: &description})
	require.NoError(t, err)

	deleted, err := serv.Delete(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, deleted.ID)
	assert.Equal(t, "Foo", deleted.Title)
	assert.Equal(t, []model.NoteID{id}, repo.deletes)

	_, err = serv.Get(ctx, id)
	assert.ErrorIs(t, err, model.ErrNoteNotFound)
}

func TestDeleteMissingNote(t *testing.T) {
	repo := newStubRepository()
	serv := NewDefaultService(repo)

	_, err := serv.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, model.ErrNoteNotFound)
	assert.Empty(t, repo.deletes)
}

func TestReceiveRemindersWindow(t *testing.T) {
	repo := newStubRepository()
	serv := NewDefaultService(repo)
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	inside := start.Add(30 * time.Second)
	outside := start.Add(2 * time.Minute)

	_, err := serv.Create(ctx, model.Note{Title: "due", Timestamp: &inside})
	require.NoError(t, err)
	_, err = serv.Create(ctx, model.Note{Title: "later", Timestamp: &outside})
	require.NoError(t, err)
	_, err = serv.Create(ctx, model.Note{Title: "never"})
	require.NoError(t, err)

	due, err := serv.ReceiveReminders(ctx, start, start.Add(time.Minute))
	require.NoError(t, err)

	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].Title)
}
