package service

import "errors"

// ErrInvalidAddon marks a proposed URL whose manifest could not be fetched or
// parsed. Invalid addons are dropped from a confirmed change, never committed.
var ErrInvalidAddon = errors.New("invalid addon")
