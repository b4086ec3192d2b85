// Package ledger tracks the single in-flight proposal of a pairing session.
//
// The ledger is the one source of truth for "is something pending". All
// operations share a single critical section so that two concurrent request
// handlers can never both observe an idle ledger and both stage a proposal.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"addonpair/models"
)

// Ledger holds at most one change per server instance. A change keeps its
// terminal resolution until the next successful Propose replaces it, so the
// polling endpoint can still report confirmed/rejected after resolution.
type Ledger struct {
	mu         sync.Mutex
	change     *models.PendingChange
	resolution models.ChangeResolution
}

// New returns an idle ledger.
func New() *Ledger {
	return &Ledger{}
}

// Propose stages urls as the session's pending change and returns it with a
// fresh id. Fails with ErrBusy while an earlier change is still pending; a
// resolved change is replaced. The input slice is copied.
func (l *Ledger) Propose(urls []string) (models.PendingChange, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.change != nil && l.resolution == models.ResolutionPending {
		return models.PendingChange{}, ErrBusy
	}

	change := &models.PendingChange{
		ID:           uuid.NewString(),
		ProposedURLs: append([]string(nil), urls...),
		CreatedAt:    time.Now(),
	}

	l.change = change
	l.resolution = models.ResolutionPending

	return *change, nil
}

// Resolve moves the change with the given id from Pending to outcome.
// Resolution is monotonic: a second Resolve on the same id fails with
// ErrAlreadyResolved, an unknown id with ErrChangeNotFound.
func (l *Ledger) Resolve(id string, outcome models.ChangeResolution) error {
	if outcome != models.ResolutionConfirmed && outcome != models.ResolutionRejected {
		return fmt.Errorf("resolve: invalid outcome %q", outcome)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.change == nil || l.change.ID != id {
		return ErrChangeNotFound
	}
	if l.resolution != models.ResolutionPending {
		return ErrAlreadyResolved
	}

	l.resolution = outcome
	return nil
}

// Current returns the pending change, if any. Resolved changes are not
// reported here — this is the "is the TV waiting on the user" peek.
func (l *Ledger) Current() (models.PendingChange, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.change == nil || l.resolution != models.ResolutionPending {
		return models.PendingChange{}, false
	}
	return *l.change, true
}

// Status reports the resolution of the change with the given id. The second
// return value is false when the id does not match the session's change —
// including after Discard.
func (l *Ledger) Status(id string) (models.ChangeResolution, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.change == nil || l.change.ID != id {
		return "", false
	}
	return l.resolution, true
}

// Discard drops the session's change without resolving it. Called on session
// teardown; a poll for the discarded id reports not found afterwards.
func (l *Ledger) Discard() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.change = nil
	l.resolution = ""
}
