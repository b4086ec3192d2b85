package models

import "time"

// ChangeResolution is the lifecycle state of a PendingChange. Transitions are
// monotonic: Pending moves to Confirmed or Rejected exactly once.
type ChangeResolution string

const (
	ResolutionPending   ChangeResolution = "pending"
	ResolutionConfirmed ChangeResolution = "confirmed"
	ResolutionRejected  ChangeResolution = "rejected"
)

// PendingChange is one proposal submitted by the paired device. ProposedURLs
// preserves the exact order the device supplied; the slice is the candidate
// final ordering of the addon list. Immutable once created — only its
// resolution state in the ledger moves.
type PendingChange struct {
	ID           string
	ProposedURLs []string
	CreatedAt    time.Time
}

// Diff is the added/removed summary between the committed addon list and a
// proposal, computed over normalized keys. It is derived on demand and never
// stored. Empty Added and Removed does not mean "no change": a pure
// reordering also produces an empty diff.
type Diff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Empty reports whether the diff carries no additions and no removals.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Proposal is a staged change as handed to the confirmation UI: the ledger
// entry plus the precomputed summary the user decides on. Reordered is set
// when membership is unchanged but positions moved, so the UI can still say
// "order changed" for an empty diff.
type Proposal struct {
	Change    PendingChange
	Diff      Diff
	Reordered bool
}
