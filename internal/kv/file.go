package kv

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps the whole key→document map in a single JSON file, the
// local-storage equivalent for a single-user deployment. Each Update rewrites
// the file through a temp file and an atomic rename, so a crash mid-write
// leaves the previous state intact.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFile opens (or lazily creates) a file-backed store at path.
func NewFile(path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &fileStore{path: path}, nil
}

func (s *fileStore) View(ctx context.Context, fn func(Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(roTx{&mapTx{docs: s.load()}})
}

func (s *fileStore) Update(ctx context.Context, fn func(Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &mapTx{docs: s.load()}
	if err := fn(tx); err != nil {
		return err
	}
	return s.write(tx.docs)
}

func (s *fileStore) Close() error { return nil }

// load reads the backing file fresh on every operation. A missing or
// unreadable file is an empty store, not an error.
func (s *fileStore) load() map[string][]byte {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("kv: reading %s: %v (treating store as empty)", s.path, err)
		}
		return map[string][]byte{}
	}
	var docs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		log.Printf("kv: %s is corrupt: %v (treating store as empty)", s.path, err)
		return map[string][]byte{}
	}
	out := make(map[string][]byte, len(docs))
	for k, v := range docs {
		out[k] = v
	}
	return out
}

func (s *fileStore) write(docs map[string][]byte) error {
	payload := make(map[string]json.RawMessage, len(docs))
	for k, v := range docs {
		payload[k] = v
	}
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
