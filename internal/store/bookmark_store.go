package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/locvowork/hr_dashboard_sample/internal/domain"
	"github.com/locvowork/hr_dashboard_sample/internal/logger"
)

// BookmarkStore maintains the set of bookmarked employee ids. The set is
// loaded from durable storage at construction and fully rewritten after
// every mutation. It has no dependency on the employee collection; stale
// ids are tolerated, not purged.
type BookmarkStore struct {
	storage domain.BlobStorage

	mu  sync.Mutex
	ids map[int]struct{}
}

// NewBookmarkStore reads the persisted set from storage. A missing or
// corrupt slot starts the store with an empty set; construction never fails.
func NewBookmarkStore(storage domain.BlobStorage) *BookmarkStore {
	s := &BookmarkStore{
		storage: storage,
		ids:     make(map[int]struct{}),
	}

	data, err := storage.Load()
	if err != nil {
		return s
	}
	var saved []int
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.WarnLog(context.Background(), "Discarding unreadable bookmark data: %v", err)
		return s
	}
	for _, id := range saved {
		s.ids[id] = struct{}{}
	}
	return s
}

// Add marks an employee id as bookmarked. Adding a present id is a no-op.
func (s *BookmarkStore) Add(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.persist()
}

// Remove unmarks an employee id. Removing an absent id is a no-op.
func (s *BookmarkStore) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	s.persist()
}

// IsBookmarked reports membership for id.
func (s *BookmarkStore) IsBookmarked(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the bookmarked ids in ascending order.
func (s *BookmarkStore) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

// persist rewrites the whole set to storage. A write failure is logged; the
// in-memory set already reflects the mutation. Callers must hold s.mu.
func (s *BookmarkStore) persist() {
	data, err := json.Marshal(s.sortedLocked())
	if err != nil {
		logger.ErrorLog(context.Background(), "Failed to serialize bookmarks: %v", err)
		return
	}
	if err := s.storage.Store(data); err != nil {
		logger.ErrorLog(context.Background(), "Failed to persist bookmarks: %v", err)
	}
}

func (s *BookmarkStore) sortedLocked() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
