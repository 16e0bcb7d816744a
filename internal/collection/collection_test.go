package collection

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodlens/prodlens-core/internal/storage"
)

type note struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n note) EntityID() int64 { return n.ID }

func (n note) Stamp(id int64, createdAt time.Time) note {
	n.ID = id
	n.CreatedAt = createdAt
	return n
}

func newTestStore(t *testing.T, seed []note) (*Store[note], *storage.FileStore) {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewStore("notes", seed, fs, NewIDGenerator(), nil), fs
}

func TestStore_SeedInstalledAndPersisted(t *testing.T) {
	seed := []note{{ID: 1, Text: "alpha"}, {ID: 2, Text: "beta"}}
	store, fs := newTestStore(t, seed)

	items, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, seed, items)

	// The seed becomes the durable baseline immediately.
	data, err := fs.Get("notes")
	require.NoError(t, err)
	var persisted []note
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, seed, persisted)
}

func TestStore_CreateAppendsAndPersists(t *testing.T) {
	store, fs := newTestStore(t, nil)

	created, err := store.Create(note{Text: "first"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	items, err := store.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Text)

	data, err := fs.Get("notes")
	require.NoError(t, err)
	var persisted []note
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, items, persisted)
}

func TestStore_CreateMintsDistinctIDs(t *testing.T) {
	store, _ := newTestStore(t, nil)

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		created, err := store.Create(note{Text: "n"})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %d", created.ID)
		seen[created.ID] = true
	}
}

func TestStore_Update(t *testing.T) {
	store, _ := newTestStore(t, []note{{ID: 1, Text: "old"}})

	t.Run("merges fields and persists", func(t *testing.T) {
		updated, err := store.Update(1, func(n note) note {
			n.Text = "new"
			return n
		})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Text)
		assert.EqualValues(t, 1, updated.ID)
	})

	t.Run("missing id reports ErrNotFound", func(t *testing.T) {
		_, err := store.Update(999, func(n note) note { return n })
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_DeleteIsIdempotentViaSentinel(t *testing.T) {
	store, _ := newTestStore(t, []note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}})

	require.NoError(t, store.Delete(1))

	items, err := store.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Second delete of the same id: sentinel, collection unchanged.
	assert.ErrorIs(t, store.Delete(1), ErrNotFound)

	items, err = store.Load()
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Text)
}

func TestStore_ListPredicateIsPureRead(t *testing.T) {
	store, fs := newTestStore(t, []note{{ID: 1, Text: "keep"}, {ID: 2, Text: "skip"}})

	_, err := store.Load()
	require.NoError(t, err)
	before, err := fs.Get("notes")
	require.NoError(t, err)

	filtered, err := store.List(func(n note) bool { return n.Text == "keep" })
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.EqualValues(t, 1, filtered[0].ID)

	after, err := fs.Get("notes")
	require.NoError(t, err)
	assert.Equal(t, before, after, "List must not persist")
}

func TestStore_CorruptSnapshotFallsBackToSeed(t *testing.T) {
	seed := []note{{ID: 1, Text: "seeded"}}
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.Set("notes", []byte(`{definitely not json]`)))

	store := NewStore("notes", seed, fs, NewIDGenerator(), nil)

	items, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, seed, items)

	// Recovery re-persists the seed as the new baseline.
	data, err := fs.Get("notes")
	require.NoError(t, err)
	var persisted []note
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, seed, persisted)
}

func TestStore_PersistedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	first := NewStore[note]("notes", nil, fs, NewIDGenerator(), nil)
	a, err := first.Create(note{Text: "a"})
	require.NoError(t, err)
	b, err := first.Create(note{Text: "b"})
	require.NoError(t, err)

	// A fresh store over the same backend sees the identical collection.
	second := NewStore[note]("notes", nil, fs, NewIDGenerator(), nil)
	items, err := second.Load()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, b.ID, items[1].ID)
	assert.True(t, a.CreatedAt.Equal(items[0].CreatedAt))
}

func TestIDGenerator_Monotonic(t *testing.T) {
	gen := NewIDGenerator()
	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		next := gen.Next()
		assert.Greater(t, next, prev)
		prev = next
	}
}
