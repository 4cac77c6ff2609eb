// Package redisstore implements the repository interfaces on top of a
// plain Redis key layout:
//
//	profile:<name>  JSON profile record
//	profiles        LIST of names in creation order
//	diary:<name>    JSON array of entries, newest first
//
// Every mutation rewrites a single key, so each operation is atomic on
// its own; the profile record and the name index are separate keys with
// a documented inconsistency window (listing read-repairs around it).
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"ourstory/internal/domain/entity"
	"ourstory/internal/domain/repository"
	"ourstory/pkg/helpers"
)

const profileIndexKey = "profiles"

func profileKey(name string) string { return "profile:" + name }
func diaryKey(name string) string   { return "diary:" + name }

type profileRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProfileRepository struct {
	rdb *redis.Client
}

func NewProfileRepository(rdb *redis.Client) *ProfileRepository {
	return &ProfileRepository{rdb: rdb}
}

func (r *ProfileRepository) Create(ctx context.Context, p *entity.Profile) error {
	b, err := json.Marshal(profileRecord{
		ID:           p.ID,
		Name:         p.Name,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	})
	if err != nil {
		return err
	}

	// SETNX is the uniqueness check; names are compared byte-for-byte.
	ok, err := r.rdb.SetNX(ctx, profileKey(p.Name), b, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrDuplicate
	}

	// A recreated name must start from an empty diary; drop any entries
	// left behind by a partially failed delete of the old profile.
	pipe := r.rdb.Pipeline()
	pipe.Del(ctx, diaryKey(p.Name))
	pipe.RPush(ctx, profileIndexKey, p.Name)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*entity.Profile, error) {
	var rec profileRecord
	found, err := helpers.RedisGetJSON(ctx, r.rdb, profileKey(name), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	return &entity.Profile{
		ID:           rec.ID,
		Name:         rec.Name,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}, nil
}

// ListNames walks the name index and skips names whose profile record is
// missing, repairing reads around the index/record write gap.
func (r *ProfileRepository) ListNames(ctx context.Context) ([]string, error) {
	names, err := r.rdb.LRange(ctx, profileIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		n, err := r.rdb.Exists(ctx, profileKey(name)).Result()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			out = append(out, name)
		}
	}
	return out, nil
}

// Delete removes the profile record first so the name stops resolving
// even if the later index and diary cleanup fails.
func (r *ProfileRepository) Delete(ctx context.Context, name string) error {
	n, err := r.rdb.Del(ctx, profileKey(name)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return r.rdb.LRem(ctx, profileIndexKey, 0, name).Err()
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
