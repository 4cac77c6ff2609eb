package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ourstory/internal/domain/entity"
	repo "ourstory/internal/domain/repository"
)

// DiaryService fronts the entry store with the password gate. There is no
// unauthenticated read path for diary content: every operation, listing
// included, re-verifies the profile password.
type DiaryService struct {
	Gate    *ProfileService
	Entries repo.EntryRepository
	Logger  *logrus.Logger
}

func NewDiaryService(gate *ProfileService, entries repo.EntryRepository, logger *logrus.Logger) *DiaryService {
	return &DiaryService{Gate: gate, Entries: entries, Logger: logger}
}

// List returns the profile's entries newest-first. A profile with no
// entries yields an empty slice, not an error.
func (s *DiaryService) List(ctx context.Context, profileName, password string) ([]entity.Entry, error) {
	if _, err := s.Gate.Verify(ctx, profileName, password); err != nil {
		return nil, err
	}
	entries, err := s.Entries.ListByProfile(ctx, profileName)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []entity.Entry{}
	}
	return entries, nil
}

// Create adds an entry. Title, date and body are all required and must be
// non-empty after trimming.
func (s *DiaryService) Create(ctx context.Context, profileName, password, title, date, body string) (*entity.Entry, error) {
	if _, err := s.Gate.Verify(ctx, profileName, password); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	body = strings.TrimSpace(body)
	if title == "" || date == "" || body == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	e := &entity.Entry{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      date,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Entries.Create(ctx, profileName, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return e, nil
}

// Update applies a partial patch to one entry; nil patch fields keep
// their current value and updated_at is refreshed. Entry ids under other
// profiles are treated as missing.
func (s *DiaryService) Update(ctx context.Context, profileName, password, id string, patch entity.EntryPatch) error {
	if _, err := s.Gate.Verify(ctx, profileName, password); err != nil {
		return err
	}
	if id == "" || patch.IsEmpty() {
		return ErrInvalidInput
	}
	if err := s.Entries.Update(ctx, profileName, id, patch); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete removes one entry. Deleting an already deleted id reports
// ErrEntryNotFound, never success.
func (s *DiaryService) Delete(ctx context.Context, profileName, password, id string) error {
	if _, err := s.Gate.Verify(ctx, profileName, password); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.Entries.Delete(ctx, profileName, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
