// Package memory provides the in-memory content store used when no database
// is configured. The rendering layer reads entries by id after a load cycle.
package memory

import (
	"context"
	"sync"

	"content_syncer/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
}

func New() *Store {
	return &Store{
		entries: make(map[string]domain.Entry),
	}
}

// Clear wipes the store. Every load cycle is a full refresh.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]domain.Entry)
	return nil
}

// Set commits one entry. A duplicate identifier overwrites the earlier
// entry: last write wins.
func (s *Store) Set(ctx context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return nil
}

func (s *Store) Get(id string) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	return entry, ok
}

func (s *Store) List(collection domain.Collection) []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []domain.Entry
	for _, e := range s.entries {
		if e.Collection == collection {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
