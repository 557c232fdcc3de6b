package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for API client operations.
// These can be checked using errors.Is().
var (
	// ErrUnauthorized is returned when a request is rejected with 401 and
	// no recovery was possible within the current attempt.
	ErrUnauthorized = errors.New("api: unauthorized")

	// ErrSessionExpired is returned when the refresh protocol failed
	// irrecoverably and all credentials have been cleared. The caller must
	// send the user back to the login entry point.
	ErrSessionExpired = errors.New("api: session expired")
)

// ServerError represents a non-validation error returned by the backend.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: server returned status %d", e.Status)
	}
	return fmt.Sprintf("api: server returned status %d: %s", e.Status, e.Message)
}

// ValidationError carries field-keyed validation messages from the backend,
// e.g. {"email": ["이미 사용 중인 이메일입니다."]}. It is returned to the
// caller for inline display, never treated as fatal.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "api: validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "api: validation failed: " + strings.Join(parts, ", ")
}

// FieldMessages returns the messages for a field, or nil.
func (e *ValidationError) FieldMessages(field string) []string {
	if e == nil {
		return nil
	}
	return e.Fields[field]
}
