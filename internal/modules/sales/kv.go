package sales

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sanvicreation/boutique-backend/internal/kv"
)

// Key is the document key holding the monthly sales series.
const Key = "salesData"

// ReadSales decodes the sales document inside a transaction, treating a
// missing or corrupt document as empty.
func ReadSales(tx kv.Tx) []Point {
	raw, err := tx.Get(Key)
	if err != nil {
		return nil
	}
	var points []Point
	if err := json.Unmarshal(raw, &points); err != nil {
		log.Printf("sales: corrupt %q document, treating as empty: %v", Key, err)
		return nil
	}
	return points
}

// WriteSales encodes and stores the full sales series.
func WriteSales(tx kv.Tx, points []Point) error {
	raw, err := json.Marshal(points)
	if err != nil {
		return err
	}
	return tx.Put(Key, raw)
}

type kvRepo struct{ store kv.Store }

// NewKVRepository returns a Repository backed by the given document store.
func NewKVRepository(store kv.Store) Repository { return &kvRepo{store: store} }

func (r *kvRepo) List(ctx context.Context) ([]Point, error) {
	var points []Point
	err := r.store.View(ctx, func(tx kv.Tx) error {
		points = ReadSales(tx)
		return nil
	})
	return points, err
}
