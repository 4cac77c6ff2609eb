package repository

import (
	"context"

	"ourstory/internal/domain/entity"
)

// ProfileRepository defines storage operations for the profile directory.
// Implementations live in internal/infrastructure.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByName(ctx context.Context, name string) (*entity.Profile, error)
	ListNames(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
