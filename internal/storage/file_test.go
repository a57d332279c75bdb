package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.json")
	s := NewFileStorage(path)

	if _, err := s.Load(); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error before first store, got %v", err)
	}

	if err := s.Store([]byte("[1,2]")); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	data, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(data) != "[1,2]" {
		t.Errorf("expected [1,2], got %s", data)
	}

	// Store overwrites the whole slot.
	if err := s.Store([]byte("[3]")); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	data, _ = s.Load()
	if string(data) != "[3]" {
		t.Errorf("expected [3], got %s", data)
	}
}

func TestMemoryStorage(t *testing.T) {
	m := NewMemoryStorage()

	if _, err := m.Load(); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error for empty slot, got %v", err)
	}

	if err := m.Store([]byte("x")); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	data, err := m.Load()
	if err != nil || string(data) != "x" {
		t.Errorf("expected x, got %s (%v)", data, err)
	}

	// Load returns a copy; mutating it must not affect the slot.
	data[0] = 'y'
	data, _ = m.Load()
	if string(data) != "x" {
		t.Errorf("expected slot to be isolated from callers, got %s", data)
	}
}

func TestMemoryStorageSeed(t *testing.T) {
	m := NewMemoryStorage()
	m.Seed([]byte("seeded"))

	data, err := m.Load()
	if err != nil || string(data) != "seeded" {
		t.Errorf("expected seeded content, got %s (%v)", data, err)
	}
}
