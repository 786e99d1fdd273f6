package validation

import (
	"fmt"

	emailaddress "github.com/mcnijman/go-emailaddress"
)

func notEmpty(value string) *FieldError {
	if value == "" {
		return &FieldError{Kind: KindEmptyField, Message: "field is required"}
	}
	return nil
}

// lengthBetween accepts values whose length is strictly between min and max.
func lengthBetween(min, max int) Rule {
	return func(value string) *FieldError {
		if len(value) <= min || len(value) >= max {
			return &FieldError{
				Kind:    KindInvalidLength,
				Message: fmt.Sprintf("must contain between %d and %d characters", min+1, max-1),
			}
		}
		return nil
	}
}

// validEmail checks address syntax only, no DNS or MX lookup.
func validEmail(value string) *FieldError {
	if _, err := emailaddress.Parse(value); err != nil {
		return &FieldError{Kind: KindInvalidEmail, Message: "address is invalid"}
	}
	return nil
}
