package shared

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates a record id or referenced record does not resolve.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness conflict on save.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrDataIntegrity indicates a cross-field or cross-aggregate invariant violation.
	ErrDataIntegrity = errors.New("data integrity violation")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError describes a single field-level validation failure. Message is
// the localized user-facing text; Detail carries the developer diagnostic.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// ValidationError aggregates field-level failures for one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}
