package session

import "errors"

// ErrSessionNotFound is returned when no session exists for the given ID
var ErrSessionNotFound = errors.New("session not found")
