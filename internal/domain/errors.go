package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidTier        = errors.New("invalid tier")
	ErrDuplicateSessionID = errors.New("duplicate session id")
)
