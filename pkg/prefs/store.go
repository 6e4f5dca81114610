package prefs

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value is stored under a key.
var ErrNotFound = errors.New("prefs: value not found")

// Store persists small string preferences across sessions. The
// localization engine keeps its active locale in one; anything with
// durable get/set semantics qualifies.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing a previous value.
	Set(ctx context.Context, key, value string) error
}
