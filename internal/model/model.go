package model

import (
	"errors"
	"time"
)

type (
	NoteID int64
	UserID int64
)

type (
	User struct {
		ID          UserID
		Username    string
		Email       string
		FullName    string
		Description *string
		IsActive    bool
	}

	// Note is a stored note. Timestamp doubles as the reminder time:
	// the notifier publishes notes whose timestamp falls due.
	Note struct {
		ID          NoteID
		Title       string
		Description *string
		Timestamp   *time.Time
	}
)

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrUsernameTaken = errors.New("username already taken")
)
