package server

import "errors"

// ErrNoPortAvailable is returned when every port in the configured candidate
// range is already taken. The pairing attempt fails; no listener is left
// behind.
var ErrNoPortAvailable = errors.New("no port available in configured range")
