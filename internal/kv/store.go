package kv

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Tx.Get when a document has never been written
// under the requested key.
var ErrNoKey = errors.New("kv: key not found")

var errReadOnly = errors.New("kv: put inside read-only view")

// Tx is the view of the store inside a View or Update closure. Values are
// whole JSON documents; the store does not interpret them.
type Tx interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Store is a keyed-document store. Every key written inside a single Update
// closure commits atomically: if the closure returns an error, or the commit
// itself fails, no key is changed.
type Store interface {
	View(ctx context.Context, fn func(Tx) error) error
	Update(ctx context.Context, fn func(Tx) error) error
	Close() error
}

type roTx struct{ tx Tx }

func (t roTx) Get(key string) ([]byte, error) { return t.tx.Get(key) }
func (t roTx) Put(string, []byte) error       { return errReadOnly }

// mapTx stages reads and writes against an in-memory key→document map.
// Both the file and memory drivers commit by swapping in the staged map.
type mapTx struct{ docs map[string][]byte }

func (t *mapTx) Get(key string) ([]byte, error) {
	val, ok := t.docs[key]
	if !ok {
		return nil, ErrNoKey
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (t *mapTx) Put(key string, value []byte) error {
	val := make([]byte, len(value))
	copy(val, value)
	t.docs[key] = val
	return nil
}

func cloneDocs(docs map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(docs))
	for k, v := range docs {
		out[k] = v
	}
	return out
}
