package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by repositories when no record matches the
// given id.
var ErrNotFound = errors.New("record not found")

// ValidationErrors maps a form field name to a human-readable message so
// the caller can attach each message to the corresponding input.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}
