package kv

import (
	"context"
	"sync"
)

// memStore is an in-memory store for tests and ephemeral runs.
type memStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() Store {
	return &memStore{docs: map[string][]byte{}}
}

func (s *memStore) View(ctx context.Context, fn func(Tx) error) error {
	s.mu.RLock()
	docs := cloneDocs(s.docs)
	s.mu.RUnlock()
	return fn(roTx{&mapTx{docs: docs}})
}

func (s *memStore) Update(ctx context.Context, fn func(Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &mapTx{docs: cloneDocs(s.docs)}
	if err := fn(tx); err != nil {
		return err
	}
	s.docs = tx.docs
	return nil
}

func (s *memStore) Close() error { return nil }
