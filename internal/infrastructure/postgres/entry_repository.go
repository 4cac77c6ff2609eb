package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ourstory/internal/domain/entity"
	"ourstory/internal/domain/repository"
)

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

func (r *EntryRepository) ListByProfile(ctx context.Context, profileName string) ([]entity.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.title, e.date, e.body, e.created_at, e.updated_at
		FROM diary_entries e
		JOIN profiles p ON p.id = e.profile_id
		WHERE p.name = $1
		ORDER BY e.created_at DESC, e.id DESC
	`, profileName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]entity.Entry, 0)
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Body, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *EntryRepository) Create(ctx context.Context, profileName string, e *entity.Entry) error {
	// Inserting through a profile lookup keeps the operation a single
	// statement; zero rows means the profile vanished under us.
	res, err := r.pool.Exec(ctx, `
		INSERT INTO diary_entries (id, profile_id, title, date, body, created_at, updated_at)
		SELECT $2, p.id, $3, $4, $5, $6, $6
		FROM profiles p
		WHERE p.name = $1
	`, profileName, e.ID, e.Title, e.Date, e.Body, e.CreatedAt)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Update(ctx context.Context, profileName, id string, patch entity.EntryPatch) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE diary_entries e
		SET title      = COALESCE($3, e.title),
		    date       = COALESCE($4, e.date),
		    body       = COALESCE($5, e.body),
		    updated_at = now()
		FROM profiles p
		WHERE p.id = e.profile_id
		  AND p.name = $1
		  AND e.id = $2
	`, profileName, id, patch.Title, patch.Date, patch.Body)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, profileName, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM diary_entries e
		USING profiles p
		WHERE p.id = e.profile_id
		  AND p.name = $1
		  AND e.id = $2
	`, profileName, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) PurgeProfile(ctx context.Context, profileName string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM diary_entries e
		USING profiles p
		WHERE p.id = e.profile_id
		  AND p.name = $1
	`, profileName)
	return err
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
