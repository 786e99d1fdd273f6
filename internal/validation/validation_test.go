package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() UserCreateInput {
	return UserCreateInput{
		Username:        "someone",
		Email:           "someone@example.com",
		FullName:        "Some One",
		Password:        "secret-pass",
		ConfirmPassword: "secret-pass",
	}
}

func kindFor(t *testing.T, report *Report, field string) Kind {
	t.Helper()
	for _, fe := range report.Fields {
		if fe.Field == field {
			return fe.Kind
		}
	}
	t.Fatalf("no error for field %q in %+v", field, report.Fields)
	return ""
}

func TestValidateUserCreateAccepted(t *testing.T) {
	user, report := ValidateUserCreate(validInput())

	require.True(t, report.Empty())
	require.NotNil(t, user)
	assert.Equal(t, "someone", user.Username)
	assert.Equal(t, "someone@example.com", user.Email)
	assert.Equal(t, "Some One", user.FullName)
	assert.Equal(t, "secret-pass", user.Password)
	assert.Nil(t, user.Description)
	assert.NoError(t, report.Err())
}

func TestValidateUserCreateDescriptionOptional(t *testing.T) {
	in := validInput()
	in.Description = "likes notes"

	user, report := ValidateUserCreate(in)

	require.True(t, report.Empty())
	require.NotNil(t, user.Description)
	assert.Equal(t, "likes notes", *user.Description)
}

func TestValidateUserCreateLengthBounds(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		accepted bool
	}{
		{name: "three rejected", length: 3, accepted: false},
		{name: "four accepted", length: 4, accepted: true},
		{name: "nineteen accepted", length: 19, accepted: true},
		{name: "twenty rejected", length: 20, accepted: false},
	}

	for _, tt := range tests {
		t.Run("username "+tt.name, func(t *testing.T) {
			in := validInput()
			in.Username = strings.Repeat("a", tt.length)

			_, report := ValidateUserCreate(in)

			if tt.accepted {
				assert.True(t, report.Empty())
			} else {
				assert.Equal(t, KindInvalidLength, kindFor(t, report, "username"))
			}
		})

		t.Run("password "+tt.name, func(t *testing.T) {
			in := validInput()
			in.Password = strings.Repeat("a", tt.length)
			in.ConfirmPassword = in.Password

			_, report := ValidateUserCreate(in)

			if tt.accepted {
				assert.True(t, report.Empty())
			} else {
				assert.Equal(t, KindInvalidLength, kindFor(t, report, "password"))
			}
		})
	}
}

func TestValidateUserCreatePasswordMismatch(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = "something-else"

	user, report := ValidateUserCreate(in)

	assert.Nil(t, user)
	assert.Equal(t, KindPasswordMismatch, kindFor(t, report, "confirm_password"))
}

func TestValidateUserCreateEmail(t *testing.T) {
	tests := []struct {
		email    string
		accepted bool
	}{
		{email: "someone@example.com", accepted: true},
		{email: "first.last@sub.example.org", accepted: true},
		{email: "plainaddress", accepted: false},
		{email: "@example.com", accepted: false},
		{email: "someone@", accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			in := validInput()
			in.Email = tt.email

			_, report := ValidateUserCreate(in)

			if tt.accepted {
				assert.True(t, report.Empty())
			} else {
				assert.Equal(t, KindInvalidEmail, kindFor(t, report, "email"))
			}
		})
	}
}

func TestValidateUserCreateCollectsAllFieldErrors(t *testing.T) {
	_, report := ValidateUserCreate(UserCreateInput{})

	require.Len(t, report.Fields, 5)
	for _, field := range []string{"username", "full_name", "password", "confirm_password", "email"} {
		assert.Equal(t, KindEmptyField, kindFor(t, report, field))
	}
	assert.Error(t, report.Err())
}

func TestValidateUserCreateDependencyUnmet(t *testing.T) {
	in := validInput()
	in.Password = "ab"
	in.ConfirmPassword = "ab"

	_, report := ValidateUserCreate(in)

	assert.Equal(t, KindInvalidLength, kindFor(t, report, "password"))
	assert.Equal(t, KindDependencyUnmet, kindFor(t, report, "confirm_password"))
}

func TestValidateUserCreateMismatchSkippedWhenConfirmEmpty(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = ""

	_, report := ValidateUserCreate(in)

	require.Len(t, report.Fields, 1)
	assert.Equal(t, KindEmptyField, kindFor(t, report, "confirm_password"))
}

func TestValidateNoteTitleRequired(t *testing.T) {
	note, report := ValidateNote(NoteInput{})

	assert.Nil(t, note)
	assert.Equal(t, KindEmptyField, kindFor(t, report, "title"))
}

func TestValidateNoteEmptyTitleAccepted(t *testing.T) {
	title := ""

	note, report := ValidateNote(NoteInput{Title: &title})

	require.True(t, report.Empty())
	assert.Equal(t, "", note.Title)
}

func TestValidateNotePassthrough(t *testing.T) {
	title := "Foo"
	description := "Bar"
	timestamp := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	note, report := ValidateNote(NoteInput{Title: &title, Description: &description, Timestamp: &timestamp})

	require.True(t, report.Empty())
	assert.Equal(t, "Foo", note.Title)
	assert.Equal(t, "Bar", *note.Description)
	assert.True(t, timestamp.Equal(*note.Timestamp))
}
