package store

import "errors"

var (
	ErrExecutingQuery       = errors.New("failed to execute query")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
