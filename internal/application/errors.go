package application

import "errors"

// Error taxonomy surfaced to the gateway layer. Handlers match these with
// errors.Is and map them to HTTP statuses; anything else is a 500.
var (
	ErrProfileExists   = errors.New("profile name already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrInvalidPassword = errors.New("incorrect password")
	ErrInvalidInput    = errors.New("invalid input")
)
