package hibp

import (
	"fmt"
	"strings"
)

// TransportError reports that the HTTP transport failed before a status was
// available: connection failures, timeouts, or an aborted body read. The
// underlying cause is preserved for errors.Is/As.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a completed round trip that answered with a non-2xx
// status. The service uses 404 on account lookups to mean "not found in any
// breach"; callers that want that reading match on StatusCode.
type StatusError struct {
	URL        string
	StatusCode int
	Snippet    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d body: %s", e.URL, e.StatusCode, e.Snippet)
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v body: %s", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a required field that is missing, or a field holding
// the wrong JSON type. Value carries the raw decoded value that failed and is
// nil when the field was absent (or JSON null).
type SchemaError struct {
	Field string
	Value any
}

func (e *SchemaError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("required field %q is missing", e.Field)
	}
	return fmt.Sprintf("field %q has unexpected value %v (%T)", e.Field, e.Value, e.Value)
}

// ShapeError reports a top-level JSON value that is neither the object nor
// the array the endpoint calls for.
type ShapeError struct {
	Want  string
	Value any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected top-level JSON shape: want %s, got %T", e.Want, e.Value)
}

// snippet bounds raw response bodies before they end up in error messages.
func snippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
