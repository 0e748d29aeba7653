package loader

import (
	"errors"
	"fmt"
)

// ErrBodyTooLarge is the cause of a LoadError for a resource whose body
// exceeds the size limit.
var ErrBodyTooLarge = errors.New("response body too large")

// LoadError reports a resource that could not be fetched. Status is the
// HTTP status code, or 0 when the request never produced a response.
type LoadError struct {
	Path   string
	Status int
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("failed to load %s: %v", e.Path, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s (HTTP %d): %v", e.Path, e.Status, e.Cause)
	}
	return fmt.Sprintf("failed to load %s (HTTP %d)", e.Path, e.Status)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ParseError reports a resource whose body is not valid JSON for the
// expected shape.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
