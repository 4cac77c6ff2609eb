package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ourstory/internal/domain/entity"
	repo "ourstory/internal/domain/repository"
	"ourstory/pkg/helpers"
)

// ProfileService is the profile directory: it owns profile creation,
// listing and deletion, and the password gate shared with the diary.
type ProfileService struct {
	Profiles   repo.ProfileRepository
	Entries    repo.EntryRepository
	BcryptCost int
	Logger     *logrus.Logger
}

func NewProfileService(profiles repo.ProfileRepository, entries repo.EntryRepository, bcryptCost int, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Entries: entries, BcryptCost: bcryptCost, Logger: logger}
}

// Create registers a new profile. The plaintext password never reaches
// storage; only its bcrypt hash does.
func (s *ProfileService) Create(ctx context.Context, name, password string) error {
	if name == "" || password == "" {
		return ErrInvalidInput
	}

	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	p := &entity.Profile{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Profiles.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrProfileExists
		}
		return fmt.Errorf("create profile: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("profile", name).Info("profile created")
	}
	return nil
}

// List returns profile names in creation order. Names are not secret;
// diary bodies are.
func (s *ProfileService) List(ctx context.Context) ([]string, error) {
	names, err := s.Profiles.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return names, nil
}

// Verify loads a profile and checks the supplied password against its
// stored hash. It is the single authentication gate for every privileged
// operation.
func (s *ProfileService) Verify(ctx context.Context, name, password string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !helpers.CompareHashAndPassword(p.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}
	return p, nil
}

// Delete removes a profile after re-verifying its password, then purges
// its entries. The purge is best-effort: once the profile record is gone
// the name no longer resolves, so leftover entries are unreachable and
// are cleared again if the name is ever recreated.
func (s *ProfileService) Delete(ctx context.Context, name, password string) error {
	if _, err := s.Verify(ctx, name, password); err != nil {
		return err
	}

	if err := s.Profiles.Delete(ctx, name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := s.Entries.PurgeProfile(ctx, name); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("profile", name).Warn("entry purge after profile delete failed")
	}

	if s.Logger != nil {
		s.Logger.WithField("profile", name).Info("profile deleted")
	}
	return nil
}
