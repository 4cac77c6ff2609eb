package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"ourstory/internal/domain/entity"
	"ourstory/internal/domain/repository"
	"ourstory/pkg/helpers"
)

// EntryRepository keeps a profile's whole diary as one JSON array under
// diary:<name>, newest entry first. Mutations are read-modify-write of
// that single key; concurrent edits are last-write-wins.
type EntryRepository struct {
	rdb *redis.Client
}

func NewEntryRepository(rdb *redis.Client) *EntryRepository {
	return &EntryRepository{rdb: rdb}
}

func (r *EntryRepository) load(ctx context.Context, profileName string) ([]entity.Entry, error) {
	entries := make([]entity.Entry, 0)
	if _, err := helpers.RedisGetJSON(ctx, r.rdb, diaryKey(profileName), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *EntryRepository) store(ctx context.Context, profileName string, entries []entity.Entry) error {
	return helpers.RedisSetJSON(ctx, r.rdb, diaryKey(profileName), entries, 0)
}

func (r *EntryRepository) ListByProfile(ctx context.Context, profileName string) ([]entity.Entry, error) {
	return r.load(ctx, profileName)
}

func (r *EntryRepository) Create(ctx context.Context, profileName string, e *entity.Entry) error {
	entries, err := r.load(ctx, profileName)
	if err != nil {
		return err
	}
	// prepend: the diary reads newest-first
	entries = append([]entity.Entry{*e}, entries...)
	return r.store(ctx, profileName, entries)
}

func (r *EntryRepository) Update(ctx context.Context, profileName, id string, patch entity.EntryPatch) error {
	entries, err := r.load(ctx, profileName)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		if patch.Title != nil {
			entries[i].Title = *patch.Title
		}
		if patch.Date != nil {
			entries[i].Date = *patch.Date
		}
		if patch.Body != nil {
			entries[i].Body = *patch.Body
		}
		entries[i].UpdatedAt = time.Now().UTC()
		return r.store(ctx, profileName, entries)
	}
	return repository.ErrNotFound
}

func (r *EntryRepository) Delete(ctx context.Context, profileName, id string) error {
	entries, err := r.load(ctx, profileName)
	if err != nil {
		return err
	}
	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return repository.ErrNotFound
	}
	if len(kept) == 0 {
		return helpers.RedisDel(ctx, r.rdb, diaryKey(profileName))
	}
	return r.store(ctx, profileName, kept)
}

func (r *EntryRepository) PurgeProfile(ctx context.Context, profileName string) error {
	return helpers.RedisDel(ctx, r.rdb, diaryKey(profileName))
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
