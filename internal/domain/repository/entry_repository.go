package repository

import (
	"context"
	"errors"

	"ourstory/internal/domain/entity"
)

// ErrNotFound is returned by repositories when the requested profile or
// entry does not exist. Services translate it into their own taxonomy.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint (profile name) is hit.
var ErrDuplicate = errors.New("already exists")

// EntryRepository defines storage operations for diary entries.
// All operations are scoped to a single profile; an entry under another
// profile is indistinguishable from a missing one.
type EntryRepository interface {
	// ListByProfile returns the profile's entries newest-first.
	ListByProfile(ctx context.Context, profileName string) ([]entity.Entry, error)
	Create(ctx context.Context, profileName string, e *entity.Entry) error
	Update(ctx context.Context, profileName, id string, patch entity.EntryPatch) error
	Delete(ctx context.Context, profileName, id string) error
	// PurgeProfile removes every entry owned by the profile.
	PurgeProfile(ctx context.Context, profileName string) error
}
