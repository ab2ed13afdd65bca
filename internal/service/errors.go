package service

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is returned for missing or invalid sessions.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for hard lookups that do not fall back.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when the one-card-per-user invariant
	// or the unique-username constraint would be violated.
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation is returned for malformed guest input.
	ErrValidation = errors.New("invalid input")
)
