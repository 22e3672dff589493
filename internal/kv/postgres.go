package kv

import (
	"context"
	"database/sql"
)

// pgStore keeps each document as a row in a documents table. Update wraps the
// closure in a real SQL transaction with row locks, so multi-key writes (order
// placement) commit or roll back as one unit even with concurrent writers.
type pgStore struct{ db *sql.DB }

// NewPostgres wraps an open database handle and ensures the documents table
// exists.
func NewPostgres(db *sql.DB) (Store, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
		  key TEXT PRIMARY KEY,
		  doc JSONB NOT NULL
		)`)
	if err != nil {
		return nil, err
	}
	return &pgStore{db: db}, nil
}

type pgTx struct {
	ctx       context.Context
	tx        *sql.Tx
	forUpdate bool
}

func (t *pgTx) Get(key string) ([]byte, error) {
	query := `SELECT doc FROM documents WHERE key=$1`
	if t.forUpdate {
		query += ` FOR UPDATE`
	}
	var doc []byte
	err := t.tx.QueryRowContext(t.ctx, query, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNoKey
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (t *pgTx) Put(key string, value []byte) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO documents (key, doc) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc`,
		key, value)
	return err
}

func (s *pgStore) View(ctx context.Context, fn func(Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := fn(roTx{&pgTx{ctx: ctx, tx: tx}}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *pgStore) Update(ctx context.Context, fn func(Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := fn(&pgTx{ctx: ctx, tx: tx, forUpdate: true}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *pgStore) Close() error { return s.db.Close() }
