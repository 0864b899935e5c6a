package recipes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when no recipe has the requested id.
var ErrNotFound = errors.New("Recipe not found")

// ValidationError lists the fields of a request body that failed validation,
// keyed by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (ve *ValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "invalid recipe"
	}
	keys := make([]string, 0, len(ve.Fields))
	for k := range ve.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, ve.Fields[k])
	}
	return fmt.Sprintf("invalid recipe: %s", strings.Join(msgs, "; "))
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
