// Package storage provides BlobStorage implementations for the bookmark slot.
package storage

import (
	"os"
	"sync"
)

// FileStorage keeps the blob in a single file on disk.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed slot at path. The file is created on
// the first Store call.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f *FileStorage) Store(data []byte) error {
	return os.WriteFile(f.path, data, 0644)
}

// MemoryStorage is an in-memory slot, used in tests and as a no-persistence
// fallback.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemoryStorage creates an empty in-memory slot.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Seed pre-populates the slot, for tests that need existing content.
func (m *MemoryStorage) Seed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.set = true
}

func (m *MemoryStorage) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, os.ErrNotExist
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStorage) Store(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.set = true
	return nil
}
