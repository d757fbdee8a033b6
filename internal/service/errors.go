package service

import (
	"errors"
	"fmt"

	"pickem-tracker/internal/domain"
)

var (
	// ErrNotFound means the requested entry id does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrPlayerNotFound means the external lookup recognized the query
	// but matched no player.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrLookupUnavailable means the external lookup provider could not
	// be reached or answered with an error.
	ErrLookupUnavailable = errors.New("player lookup unavailable")
)

// ValidationError rejects a request payload with a field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AmbiguousPlayerError carries the candidate list when a lookup query
// matches several players and none is an exact name match.
type AmbiguousPlayerError struct {
	Candidates []domain.PlayerCandidate
}

func (e *AmbiguousPlayerError) Error() string {
	return fmt.Sprintf("%d players match the query", len(e.Candidates))
}
