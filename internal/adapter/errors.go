package adapter

import "errors"

var (
	// ErrBusy mirrors the TV's 409 answer: another change is pending.
	ErrBusy = errors.New("tv is busy with another change")

	// ErrUnexpectedStatus wraps any non-contract HTTP answer.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
