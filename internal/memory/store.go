package memory

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store guarded by a read-write mutex.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*UserMemory
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*UserMemory)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*UserMemory, error) {
	if userID == "" {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	mem, ok := s.records[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return mem, nil
}

func (s *MemoryStore) Put(ctx context.Context, mem *UserMemory) error {
	if mem == nil || mem.UserID == "" {
		return fmt.Errorf("memory record with user id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[mem.UserID] = mem
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[userID]; !ok {
		return ErrNotFound
	}
	delete(s.records, userID)
	return nil
}

// MemoryLearnedTerms is an in-process LearnedTermsStore.
type MemoryLearnedTerms struct {
	mu    sync.RWMutex
	terms map[string][]string
}

// NewMemoryLearnedTerms creates an empty in-process learned-terms store.
func NewMemoryLearnedTerms() *MemoryLearnedTerms {
	return &MemoryLearnedTerms{terms: make(map[string][]string)}
}

func (s *MemoryLearnedTerms) Get(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	terms, ok := s.terms[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return terms, nil
}

func (s *MemoryLearnedTerms) Put(ctx context.Context, userID string, terms []string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[userID] = terms
	return nil
}

func (s *MemoryLearnedTerms) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.terms, userID)
	return nil
}
