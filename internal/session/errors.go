package session

import "errors"

var (
	// ErrSessionActive is returned by StartSession while a session runs.
	ErrSessionActive = errors.New("pairing session already active")

	// ErrNoSession is returned by operations that need a running session.
	ErrNoSession = errors.New("no pairing session active")

	// ErrNoProposal is returned by Confirm and Reject when nothing awaits
	// a decision.
	ErrNoProposal = errors.New("no proposal awaiting confirmation")
)
