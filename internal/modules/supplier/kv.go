package supplier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sanvicreation/boutique-backend/internal/kv"
)

// Key is the document key holding the supplier collection.
const Key = "suppliers"

// ReadSuppliers decodes the supplier document inside a transaction, treating
// a missing or corrupt document as empty.
func ReadSuppliers(tx kv.Tx) []Supplier {
	raw, err := tx.Get(Key)
	if err != nil {
		return nil
	}
	var suppliers []Supplier
	if err := json.Unmarshal(raw, &suppliers); err != nil {
		log.Printf("supplier: corrupt %q document, treating as empty: %v", Key, err)
		return nil
	}
	return suppliers
}

// WriteSuppliers encodes and stores the full supplier collection.
func WriteSuppliers(tx kv.Tx, suppliers []Supplier) error {
	raw, err := json.Marshal(suppliers)
	if err != nil {
		return err
	}
	return tx.Put(Key, raw)
}

type kvRepo struct{ store kv.Store }

// NewKVRepository returns a Repository backed by the given document store.
func NewKVRepository(store kv.Store) Repository { return &kvRepo{store: store} }

func (r *kvRepo) List(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	err := r.store.View(ctx, func(tx kv.Tx) error {
		suppliers = ReadSuppliers(tx)
		return nil
	})
	return suppliers, err
}
