package store

import (
	"context"

	"addonpair/models"
)

// AddonRepository owns the committed, ordered addon list. The pairing
// subsystem never writes it directly; Replace is the single commit operation
// and it serializes writers internally.
type AddonRepository interface {
	// List returns the committed list in catalog-precedence order.
	List(ctx context.Context) ([]models.AddonRef, error)

	// Replace atomically swaps the committed list for addons, preserving
	// the given order, and notifies watchers with the new snapshot.
	Replace(ctx context.Context, addons []models.AddonRef) error

	// Watch returns a channel receiving the full snapshot after every
	// commit. Slow receivers miss intermediate snapshots rather than
	// blocking a commit.
	Watch() <-chan []models.AddonRef
}
