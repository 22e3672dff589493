// Package seed populates an empty store with the boutique's starter data.
// Seeding is idempotent per key: a collection is only written when its key
// has never existed, so an emptied collection stays empty.
package seed

import (
	"context"
	"errors"
	"log"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
	"github.com/sanvicreation/boutique-backend/internal/modules/sales"
	"github.com/sanvicreation/boutique-backend/internal/modules/supplier"
)

// Ensure writes the starter datasets for every absent collection key, all in
// one transaction.
func Ensure(ctx context.Context, store kv.Store) error {
	return store.Update(ctx, func(tx kv.Tx) error {
		if missing, err := absent(tx, catalog.Key); err != nil {
			return err
		} else if missing {
			log.Printf("seed: writing %d products", len(products))
			if err := catalog.WriteProducts(tx, products); err != nil {
				return err
			}
		}
		if missing, err := absent(tx, order.Key); err != nil {
			return err
		} else if missing {
			log.Printf("seed: writing %d orders", len(orders))
			if err := order.WriteOrders(tx, orders); err != nil {
				return err
			}
		}
		if missing, err := absent(tx, order.SeqKey); err != nil {
			return err
		} else if missing {
			// The counter continues from the seeded orders.
			if err := order.WriteSeq(tx, len(orders)); err != nil {
				return err
			}
		}
		if missing, err := absent(tx, supplier.Key); err != nil {
			return err
		} else if missing {
			log.Printf("seed: writing %d suppliers", len(suppliers))
			if err := supplier.WriteSuppliers(tx, suppliers); err != nil {
				return err
			}
		}
		if missing, err := absent(tx, sales.Key); err != nil {
			return err
		} else if missing {
			log.Printf("seed: writing %d sales points", len(salesData))
			if err := sales.WriteSales(tx, salesData); err != nil {
				return err
			}
		}
		return nil
	})
}

func absent(tx kv.Tx, key string) (bool, error) {
	_, err := tx.Get(key)
	if errors.Is(err, kv.ErrNoKey) {
		return true, nil
	}
	return false, err
}
