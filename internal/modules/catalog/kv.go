package catalog

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sanvicreation/boutique-backend/internal/kv"
)

// Key is the document key holding the product collection.
const Key = "products"

// ReadProducts decodes the product document inside a transaction. A missing
// or corrupt document is treated as an empty catalog rather than an error.
// Exported because order placement reads and rewrites the same document
// inside its own transaction.
func ReadProducts(tx kv.Tx) []Product {
	raw, err := tx.Get(Key)
	if err != nil {
		return nil
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Printf("catalog: corrupt %q document, treating as empty: %v", Key, err)
		return nil
	}
	return products
}

// WriteProducts encodes and stores the full product collection.
func WriteProducts(tx kv.Tx, products []Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return tx.Put(Key, raw)
}

type kvRepo struct{ store kv.Store }

// NewKVRepository returns a Repository backed by the given document store.
func NewKVRepository(store kv.Store) Repository { return &kvRepo{store: store} }

func (r *kvRepo) List(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.store.View(ctx, func(tx kv.Tx) error {
		products = ReadProducts(tx)
		return nil
	})
	return products, err
}

func (r *kvRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	var found *Product
	err := r.store.View(ctx, func(tx kv.Tx) error {
		for _, p := range ReadProducts(tx) {
			if p.ID == id {
				found = &p
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *kvRepo) Create(ctx context.Context, p *Product) error {
	return r.store.Update(ctx, func(tx kv.Tx) error {
		products := ReadProducts(tx)
		maxID := 0
		for _, existing := range products {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		p.ID = maxID + 1
		return WriteProducts(tx, append(products, *p))
	})
}

func (r *kvRepo) Update(ctx context.Context, p *Product) error {
	return r.store.Update(ctx, func(tx kv.Tx) error {
		products := ReadProducts(tx)
		for i, existing := range products {
			if existing.ID == p.ID {
				products[i] = *p
				return WriteProducts(tx, products)
			}
		}
		return ErrNotFound
	})
}

func (r *kvRepo) Delete(ctx context.Context, id int) error {
	return r.store.Update(ctx, func(tx kv.Tx) error {
		products := ReadProducts(tx)
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return WriteProducts(tx, kept)
	})
}
