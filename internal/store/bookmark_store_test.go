package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/hr_dashboard_sample/internal/storage"
)

func TestBookmarkAddRemoveIdempotent(t *testing.T) {
	s := NewBookmarkStore(storage.NewMemoryStorage())

	s.Add(5)
	s.Add(5)
	assert.True(t, s.IsBookmarked(5))
	assert.Equal(t, []int{5}, s.IDs())

	s.Remove(5)
	assert.False(t, s.IsBookmarked(5))
	assert.Empty(t, s.IDs())

	// Removing an absent id stays a no-op.
	s.Remove(5)
	assert.Empty(t, s.IDs())
}

func TestBookmarkPersistsAfterEveryMutation(t *testing.T) {
	slot := storage.NewMemoryStorage()
	s := NewBookmarkStore(slot)

	s.Add(3)
	s.Add(1)
	s.Add(2)
	s.Remove(3)

	data, err := slot.Load()
	require.NoError(t, err)
	var saved []int
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, []int{1, 2}, saved)

	// A new store over the same slot sees the persisted set.
	reloaded := NewBookmarkStore(slot)
	assert.True(t, reloaded.IsBookmarked(1))
	assert.True(t, reloaded.IsBookmarked(2))
	assert.False(t, reloaded.IsBookmarked(3))
}

func TestBookmarkToleratesMissingSlot(t *testing.T) {
	s := NewBookmarkStore(storage.NewMemoryStorage())
	assert.Empty(t, s.IDs())
}

func TestBookmarkRecoversFromCorruptSlot(t *testing.T) {
	slot := storage.NewMemoryStorage()
	slot.Seed([]byte("{not json"))

	s := NewBookmarkStore(slot)
	assert.Empty(t, s.IDs())

	// The store stays usable and overwrites the corrupt value.
	s.Add(7)
	assert.True(t, s.IsBookmarked(7))
	data, err := slot.Load()
	require.NoError(t, err)
	assert.JSONEq(t, "[7]", string(data))
}

type failingStorage struct{}

func (failingStorage) Load() ([]byte, error)   { return nil, errors.New("unreadable") }
func (failingStorage) Store(data []byte) error { return errors.New("read-only") }

func TestBookmarkMembershipSurvivesWriteFailure(t *testing.T) {
	s := NewBookmarkStore(failingStorage{})
	s.Add(9)
	assert.True(t, s.IsBookmarked(9))
}

func TestBookmarkFileStorageRoundTrip(t *testing.T) {
	path := t.TempDir() + "/bookmarks.json"
	s := NewBookmarkStore(storage.NewFileStorage(path))
	s.Add(11)
	s.Add(12)

	reloaded := NewBookmarkStore(storage.NewFileStorage(path))
	assert.Equal(t, []int{11, 12}, reloaded.IDs())
}
