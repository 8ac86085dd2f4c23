package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrUnauthorized     = errors.New("unauthorized")
)
