package services

import (
	"errors"
	"strings"
)

// ErrValidation marks a creation payload that cannot become an entry.
var ErrValidation = errors.New("validation failed")

// ValidationError lists every problem found in one payload. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	// Missing names required fields that are empty after trimming.
	Missing []string
	// Invalid holds values outside their closed set or unparseable dates.
	Invalid []error
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	for _, err := range e.Invalid {
		parts = append(parts, err.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrValidation}, e.Invalid...)
}

func (e *ValidationError) empty() bool { return len(e.Missing) == 0 && len(e.Invalid) == 0 }
