package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/spindle/pkg/machine"
)

// ErrOutcomeNotFound is returned when a cache key has no stored outcome.
var ErrOutcomeNotFound = errors.New("outcome not found")

// OutcomeStore caches execution outcomes. Execution is deterministic, so an
// outcome is fully identified by (definition fingerprint, input, step
// budget); serving a cached record is indistinguishable from re-running.
type OutcomeStore interface {
	// Save persists the outcome under the given cache key.
	Save(ctx context.Context, key string, outcome *machine.Outcome) error

	// Load retrieves a cached outcome.
	// Returns ErrOutcomeNotFound when the key is absent.
	Load(ctx context.Context, key string) (*machine.Outcome, error)

	// Delete removes a cached outcome.
	Delete(ctx context.Context, key string) error

	// List returns the cache keys currently held.
	List(ctx context.Context) ([]string, error)
}

// CacheKey builds the canonical store key for one execution.
func CacheKey(fingerprint, input string, maxSteps int) string {
	return fmt.Sprintf("%s:%d:%s", fingerprint, maxSteps, input)
}
