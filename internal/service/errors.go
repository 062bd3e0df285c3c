package service

import (
	"errors"
)

// Sentinel errors the handlers translate to HTTP statuses. Services wrap
// them with context where useful; handlers match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrInvalidInput = errors.New("invalid input")
)
