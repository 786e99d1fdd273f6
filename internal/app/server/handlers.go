package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kotche/notes/infrastructure/metrics"
	"github.com/kotche/notes/internal/model"
	"github.com/kotche/notes/internal/validation"
)

const noteNotFoundDetail = "Note not found"

type noteResponse struct {
	ID          model.NoteID `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Timestamp   *time.Time   `json:"timestamp"`
}

type notePayload struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Timestamp   *time.Time `json:"timestamp"`
}

type userResponse struct {
	ID          model.UserID `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	FullName    string       `json:"full_name"`
	Description *string      `json:"description"`
	IsActive    bool         `json:"is_active"`
}

type registerPayload struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	FullName        string `json:"full_name" form:"full_name"`
	Description     string `json:"description" form:"description"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type detailResponse struct {
	Detail any `json:"detail"`
}

type notesPageData struct {
	Notes []noteResponse
}

func toNoteResponse(note model.Note) noteResponse {
	return noteResponse{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		Timestamp:   note.Timestamp,
	}
}

func validationFailed(c echo.Context, report *validation.Report) error {
	fields := make([]fieldErrorResponse, 0, len(report.Fields))
	for _, fe := range report.Fields {
		fields = append(fields, fieldErrorResponse{Field: fe.Field, Type: string(fe.Kind), Message: fe.Message})
	}
	return c.JSON(http.StatusUnprocessableEntity, detailResponse{Detail: fields})
}

func singleFieldFailed(c echo.Context, field, kind, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, detailResponse{
		Detail: []fieldErrorResponse{{Field: field, Type: kind, Message: message}},
	})
}

func noteID(c echo.Context) (model.NoteID, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return model.NoteID(id), nil
}

// ListNotes renders every stored note, in storage order, without pagination.
func (s *Server) ListNotes(c echo.Context) error {
	notesList, err := s.notes.List(c.Request().Context())
	if err != nil {
		log.Printf("failed to list notes: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	items := make([]noteResponse, 0, len(notesList))
	for _, note := range notesList {
		items = append(items, toNoteResponse(note))
	}

	return c.Render(http.StatusOK, "notes.html", notesPageData{Notes: items})
}

func (s *Server) NoteForm(c echo.Context) error {
	return c.Render(http.StatusOK, "note.html", nil)
}

// CreateNote accepts the add-note form, validates it and redirects back to
// the listing on success.
func (s *Server) CreateNote(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var input validation.NoteInput
	if form.Has("title") {
		title := form.Get("title")
		input.Title = &title
	}
	if form.Has("description") {
		description := form.Get("description")
		input.Description = &description
	}
	if raw := form.Get("timestamp"); raw != "" {
		timestamp, err := parseTimestamp(raw)
		if err != nil {
			return singleFieldFailed(c, "timestamp", "invalid_type", "value is not a valid date-time")
		}
		input.Timestamp = &timestamp
	}

	note, report := validation.ValidateNote(input)
	if !report.Empty() {
		return validationFailed(c, report)
	}

	createdID, err := s.notes.Create(c.Request().Context(), model.Note{
		Title:       note.Title,
		Description: note.Description,
		Timestamp:   note.Timestamp,
	})
	if err != nil {
		log.Printf("failed to create note '%s': %v", note.Title, err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	metrics.NotesCreatedCounter.Inc()
	log.Printf("note '%d' created", createdID)

	return c.Redirect(http.StatusFound, "/notes")
}

func (s *Server) GetNote(c echo.Context) error {
	id, err := noteID(c)
	if err != nil {
		return singleFieldFailed(c, "id", "invalid_type", "value is not a valid integer")
	}

	note, err := s.notes.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			return c.JSON(http.StatusNotFound, detailResponse{Detail: noteNotFoundDetail})
		}
		log.Printf("failed to get note '%d': %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, toNoteResponse(*note))
}

// UpdateNote fully replaces an existing note and echoes the payload back.
// The response reflects the payload, not a re-read of storage.
func (s *Server) UpdateNote(c echo.Context) error {
	id, err := noteID(c)
	if err != nil {
		return singleFieldFailed(c, "id", "invalid_type", "value is not a valid integer")
	}

	var payload notePayload
	if err = c.Bind(&payload); err != nil {
		return singleFieldFailed(c, "body", "invalid_type", "request body is not a valid note")
	}

	note, report := validation.ValidateNote(validation.NoteInput{
		Title:       payload.Title,
		Description: payload.Description,
		Timestamp:   payload.Timestamp,
	})
	if !report.Empty() {
		return validationFailed(c, report)
	}

	err = s.notes.Update(c.Request().Context(), id, model.Note{
		Title:       note.Title,
		Description: note.Description,
		Timestamp:   note.Timestamp,
	})
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			return c.JSON(http.StatusNotFound, detailResponse{Detail: noteNotFoundDetail})
		}
		log.Printf("failed to update note '%d': %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, noteResponse{
		ID:          id,
		Title:       note.Title,
		Description: note.Description,
		Timestamp:   note.Timestamp,
	})
}

// DeleteNote removes a note and returns its pre-deletion representation.
func (s *Server) DeleteNote(c echo.Context) error {
	id, err := noteID(c)
	if err != nil {
		return singleFieldFailed(c, "id", "invalid_type", "value is not a valid integer")
	}

	note, err := s.notes.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			return c.JSON(http.StatusNotFound, detailResponse{Detail: noteNotFoundDetail})
		}
		log.Printf("failed to delete note '%d': %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	metrics.NotesDeletedCounter.Inc()

	return c.JSON(http.StatusOK, toNoteResponse(*note))
}

// RegisterUser consumes the registration schema and returns the created user
// with password fields stripped.
func (s *Server) RegisterUser(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return singleFieldFailed(c, "body", "invalid_type", "request body is not a valid registration")
	}

	user, report := validation.ValidateUserCreate(validation.UserCreateInput{
		Username:        payload.Username,
		Email:           payload.Email,
		FullName:        payload.FullName,
		Description:     payload.Description,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
	})
	if !report.Empty() {
		return validationFailed(c, report)
	}

	created, err := s.users.Register(c.Request().Context(), *user)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, detailResponse{Detail: "Username already taken"})
		}
		log.Printf("failed to register user '%s': %v", user.Username, err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, userResponse{
		ID:          created.ID,
		Username:    created.Username,
		Email:       created.Email,
		FullName:    created.FullName,
		Description: created.Description,
		IsActive:    created.IsActive,
	})
}

// parseTimestamp accepts RFC 3339 or the datetime-local format the add-note
// form submits.
func parseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04", raw)
}
