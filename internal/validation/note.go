package validation

import "time"

// NoteInput carries raw note fields. A nil pointer means the field was
// absent from the payload, which is distinct from an empty value.
type NoteInput struct {
	Title       *string
	Description *string
	Timestamp   *time.Time
}

// Note is a structurally validated note payload. Title must be present in
// the input but carries no emptiness or length rule.
type Note struct {
	Title       string
	Description *string
	Timestamp   *time.Time
}

// ValidateNote checks that title is present; description and timestamp are
// optional and pass through as-is.
func ValidateNote(in NoteInput) (*Note, *Report) {
	report := &Report{}

	if in.Title == nil {
		report.add(FieldError{Field: "title", Kind: KindEmptyField, Message: "field is required"})
		return nil, report
	}

	return &Note{
		Title:       *in.Title,
		Description: in.Description,
		Timestamp:   in.Timestamp,
	}, report
}
