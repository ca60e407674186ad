// Package statecache persists draft seat assignments per outing so a user's
// in-progress crew selection survives reloads and is visible to other active
// sessions. Entries expire logically ten minutes after the last save; the
// stored blob is retained and simply treated as absent on read. Writes are
// last-write-wins: concurrent editors overwrite each other in full.
package statecache

import (
	"context"
	"time"

	"github.com/ccbc-ox/boathouse-api/internal/models"
)

// DefaultExpiry is how long a saved draft stays loadable.
const DefaultExpiry = 10 * time.Minute

// Store is the durable keyed state cache.
type Store interface {
	// Load returns the state for the outing, or nil when no entry exists or
	// the entry has aged past the expiry window.
	Load(ctx context.Context, outingID string) (*models.AssignmentState, error)
	// Save overwrites the full state for the outing with a fresh timestamp
	// and returns what was written.
	Save(ctx context.Context, outingID string, assignments map[string]string) (*models.AssignmentState, error)
	// Clear removes the named entries, or every entry when none are given.
	Clear(ctx context.Context, outingIDs ...string) error
}

// Change describes one saved or cleared draft, as delivered to subscribers.
// Origin identifies the publishing process so relays can drop their own echo.
type Change struct {
	OutingID string                  `json:"outingId"`
	State    *models.AssignmentState `json:"state,omitempty"`
	Origin   string                  `json:"origin,omitempty"`
}

// Broadcaster fans out draft changes to other consumers of the same store,
// in this process or another one.
type Broadcaster interface {
	Publish(ctx context.Context, change Change) error
	Subscribe(fn func(Change))
}

func expired(state *models.AssignmentState, now time.Time, expiry time.Duration) bool {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return now.Sub(state.LastUpdated) > expiry
}
