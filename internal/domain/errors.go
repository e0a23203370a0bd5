package domain

import (
	"errors"
	"fmt"
)

// InvalidInputMessage is the user-facing text for every ValidationError.
const InvalidInputMessage = "Please provide valid input for all fields."

// ErrEmptyCatalog reports a catalog with no attractions at all.
var ErrEmptyCatalog = errors.New("attraction catalog is empty")

// ValidationError reports a request that cannot be planned as given.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ResolutionError reports a requested place that matched no catalog attraction.
// It aborts the whole itinerary.
type ResolutionError struct {
	Place string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve place %q: no matching attractions", e.Place)
}

// UserMessage converts a planning error into the text returned to API clients.
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return InvalidInputMessage
	}

	var rErr *ResolutionError
	if errors.As(err, &rErr) {
		return "No matching attractions found for: " + rErr.Place
	}

	return err.Error()
}
