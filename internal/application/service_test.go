package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ourstory/internal/domain/entity"
	repo "ourstory/internal/domain/repository"
)

// memStore is an in-memory stand-in for the storage drivers, implementing
// both repository interfaces with the same semantics the real ones have.
type memStore struct {
	profiles map[string]*entity.Profile
	order    []string
	entries  map[string][]entity.Entry // newest first, keyed by profile name
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[string]*entity.Profile),
		entries:  make(map[string][]entity.Entry),
	}
}

func (m *memStore) Create(ctx context.Context, p *entity.Profile) error {
	if _, ok := m.profiles[p.Name]; ok {
		return repo.ErrDuplicate
	}
	cp := *p
	m.profiles[p.Name] = &cp
	m.order = append(m.order, p.Name)
	delete(m.entries, p.Name)
	return nil
}

func (m *memStore) GetByName(ctx context.Context, name string) (*entity.Profile, error) {
	p, ok := m.profiles[name]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) ListNames(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(m.order))
	for _, n := range m.order {
		if _, ok := m.profiles[n]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) Delete(ctx context.Context, name string) error {
	if _, ok := m.profiles[name]; !ok {
		return repo.ErrNotFound
	}
	delete(m.profiles, name)
	return nil
}

func (m *memStore) ListByProfile(ctx context.Context, profileName string) ([]entity.Entry, error) {
	return append([]entity.Entry(nil), m.entries[profileName]...), nil
}

func (m *memStore) CreateEntry(ctx context.Context, profileName string, e *entity.Entry) error {
	if _, ok := m.profiles[profileName]; !ok {
		return repo.ErrNotFound
	}
	m.entries[profileName] = append([]entity.Entry{*e}, m.entries[profileName]...)
	return nil
}

func (m *memStore) Update(ctx context.Context, profileName, id string, patch entity.EntryPatch) error {
	list := m.entries[profileName]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if patch.Title != nil {
			list[i].Title = *patch.Title
		}
		if patch.Date != nil {
			list[i].Date = *patch.Date
		}
		if patch.Body != nil {
			list[i].Body = *patch.Body
		}
		list[i].UpdatedAt = time.Now().UTC()
		return nil
	}
	return repo.ErrNotFound
}

func (m *memStore) DeleteEntry(ctx context.Context, profileName, id string) error {
	list := m.entries[profileName]
	for i := range list {
		if list[i].ID == id {
			m.entries[profileName] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m *memStore) PurgeProfile(ctx context.Context, profileName string) error {
	delete(m.entries, profileName)
	return nil
}

// entryRepo adapts memStore to the EntryRepository method names.
type entryRepo struct{ *memStore }

func (r entryRepo) Create(ctx context.Context, profileName string, e *entity.Entry) error {
	return r.CreateEntry(ctx, profileName, e)
}

func (r entryRepo) Delete(ctx context.Context, profileName, id string) error {
	return r.DeleteEntry(ctx, profileName, id)
}

var (
	_ repo.ProfileRepository = (*memStore)(nil)
	_ repo.EntryRepository   = entryRepo{}
)

func newServices() (*ProfileService, *DiaryService, *memStore) {
	store := newMemStore()
	profiles := NewProfileService(store, entryRepo{store}, bcrypt.MinCost, nil)
	diary := NewDiaryService(profiles, entryRepo{store}, nil)
	return profiles, diary, store
}

func TestProfileCreateDuplicateName(t *testing.T) {
	profiles, _, _ := newServices()
	ctx := context.Background()

	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))
	err := profiles.Create(ctx, "Alice", "other-password")
	assert.ErrorIs(t, err, ErrProfileExists)

	// case-sensitive: a different casing is a different profile
	require.NoError(t, profiles.Create(ctx, "alice", "secret1"))

	names, err := profiles.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "alice"}, names)
}

func TestProfileCreateStoresVerifierNotPassword(t *testing.T) {
	profiles, _, store := newServices()
	require.NoError(t, profiles.Create(context.Background(), "Alice", "secret1"))

	p := store.profiles["Alice"]
	require.NotNil(t, p)
	assert.NotEqual(t, "secret1", p.PasswordHash)
	assert.NotEmpty(t, p.ID)
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	profiles, _, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))

	_, err := profiles.Verify(ctx, "Alice", "secret2")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = profiles.Verify(ctx, "Bob", "secret1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	p, err := profiles.Verify(ctx, "Alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
}

func TestDiaryRoundTripNewestFirst(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))

	first, err := diary.Create(ctx, "Alice", "secret1", "Day 1", "2025-01-01", "hello")
	require.NoError(t, err)
	second, err := diary.Create(ctx, "Alice", "secret1", "Day 2", "2025-01-02", "world")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	entries, err := diary.List(ctx, "Alice", "secret1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Day 2", entries[0].Title)
	assert.Equal(t, "Day 1", entries[1].Title)
	assert.Equal(t, "2025-01-01", entries[1].Date)
	assert.Equal(t, "hello", entries[1].Body)
}

func TestDiaryListRequiresPassword(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))

	_, err := diary.List(ctx, "Alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestDiaryCreateValidatesFields(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))

	_, err := diary.Create(ctx, "Alice", "secret1", "   ", "2025-01-01", "body")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = diary.Create(ctx, "Alice", "secret1", "title", "", "body")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = diary.Create(ctx, "Alice", "secret1", "title", "2025-01-01", "\t\n")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDiaryIsolationBetweenProfiles(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "A", "pw-a"))
	require.NoError(t, profiles.Create(ctx, "B", "pw-b"))

	e, err := diary.Create(ctx, "A", "pw-a", "private", "2025-01-01", "only A sees this")
	require.NoError(t, err)

	entriesB, err := diary.List(ctx, "B", "pw-b")
	require.NoError(t, err)
	assert.Empty(t, entriesB)

	// B cannot touch A's entry even with B's correct password
	title := "hijacked"
	err = diary.Update(ctx, "B", "pw-b", e.ID, entity.EntryPatch{Title: &title})
	assert.ErrorIs(t, err, ErrEntryNotFound)
	err = diary.Delete(ctx, "B", "pw-b", e.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entriesA, err := diary.List(ctx, "A", "pw-a")
	require.NoError(t, err)
	require.Len(t, entriesA, 1)
	assert.Equal(t, "private", entriesA[0].Title)
}

func TestDiaryPartialUpdate(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))

	e, err := diary.Create(ctx, "Alice", "secret1", "Day 1", "2025-01-01", "hello")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	title := "X"
	require.NoError(t, diary.Update(ctx, "Alice", "secret1", e.ID, entity.EntryPatch{Title: &title}))

	entries, err := diary.List(ctx, "Alice", "secret1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	got := entries[0]
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "2025-01-01", got.Date)
	assert.Equal(t, "hello", got.Body)
	assert.True(t, got.UpdatedAt.After(e.UpdatedAt), "updated_at must strictly increase")
	assert.Equal(t, e.CreatedAt, got.CreatedAt)
}

func TestDiaryUpdateRequiresPatch(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))
	e, err := diary.Create(ctx, "Alice", "secret1", "Day 1", "2025-01-01", "hello")
	require.NoError(t, err)

	err = diary.Update(ctx, "Alice", "secret1", e.ID, entity.EntryPatch{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	err = diary.Update(ctx, "Alice", "secret1", "", entity.EntryPatch{Title: &e.Title})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDiaryDeleteIdempotence(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))
	e, err := diary.Create(ctx, "Alice", "secret1", "Day 1", "2025-01-01", "hello")
	require.NoError(t, err)

	require.NoError(t, diary.Delete(ctx, "Alice", "secret1", e.ID))
	err = diary.Delete(ctx, "Alice", "secret1", e.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestProfileDeleteCascadesAndGuards(t *testing.T) {
	profiles, diary, _ := newServices()
	ctx := context.Background()
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))
	_, err := diary.Create(ctx, "Alice", "secret1", "Day 1", "2025-01-01", "hello")
	require.NoError(t, err)

	assert.ErrorIs(t, profiles.Delete(ctx, "Alice", "wrong"), ErrInvalidPassword)
	assert.ErrorIs(t, profiles.Delete(ctx, "Bob", "secret1"), ErrProfileNotFound)

	require.NoError(t, profiles.Delete(ctx, "Alice", "secret1"))
	_, err = diary.List(ctx, "Alice", "secret1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	// recreating the name starts from an empty diary
	require.NoError(t, profiles.Create(ctx, "Alice", "secret1"))
	entries, err := diary.List(ctx, "Alice", "secret1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
