package logstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and as the default sink
// when no backend is configured.
type MemoryStore struct {
	mu      sync.Mutex
	records map[Category][][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[Category][][]byte)}
}

func (s *MemoryStore) Append(_ context.Context, cat Category, record any) error {
	line, err := encodeRecord(cat, record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[cat] = append(s.records[cat], line)
	return nil
}

func (s *MemoryStore) Tail(_ context.Context, cat Category, n int) ([]json.RawMessage, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("logstore: unknown category %q", cat)
	}
	if n <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.records[cat]
	records := make([]json.RawMessage, 0, n)
	for i := len(all) - 1; i >= 0 && len(records) < n; i-- {
		records = append(records, json.RawMessage(bytes.Clone(all[i])))
	}
	return records, nil
}

// Count returns the number of records appended to a category.
func (s *MemoryStore) Count(cat Category) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[cat])
}
