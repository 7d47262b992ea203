package service

import "github.com/cockroachdb/errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrNoBackend      = errors.New("no backend configured")
	ErrPlayerNotFound = errors.New("player not found")
)
