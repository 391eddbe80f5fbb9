package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound signals that an identifier did not resolve to a row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateApplication signals a second application from the same
	// user to the same vacancy.
	ErrDuplicateApplication = errors.New("user already applied to this vacancy")
)

// FilterError is a client-visible rejection of a query parameter. Its text
// is surfaced to the caller as the plain reason for the 400.
type FilterError struct {
	Reason string
}

func (e *FilterError) Error() string {
	return e.Reason
}

func newFilterError(format string, args ...any) *FilterError {
	return &FilterError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationErrors collects every violation of one submission, keyed by
// field name. Mutations never fail fast on the first bad field.
type ValidationErrors map[string][]string

func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e ValidationErrors) Error() string {

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var parts []string
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], "; "))
	}
	return strings.Join(parts, ", ")
}
