package ledger

import "errors"

var (
	// ErrBusy is returned by Propose while an earlier change is still
	// pending. Proposals are refused, never queued or merged.
	ErrBusy = errors.New("another change is already pending")

	// ErrChangeNotFound is returned when the given id does not match the
	// session's change.
	ErrChangeNotFound = errors.New("change not found")

	// ErrAlreadyResolved is returned when resolving a change that already
	// reached a terminal state.
	ErrAlreadyResolved = errors.New("change already resolved")
)
