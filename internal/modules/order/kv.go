package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/sanvicreation/boutique-backend/internal/kv"
	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
)

// Key is the document key holding the order collection; SeqKey holds the
// id counter that survives order deletions, so an id is never reused.
const (
	Key    = "orders"
	SeqKey = "orderSeq"
)

// ReadOrders decodes the order document inside a transaction. A missing or
// corrupt document is treated as an empty collection.
func ReadOrders(tx kv.Tx) []Order {
	raw, err := tx.Get(Key)
	if err != nil {
		return nil
	}
	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("order: corrupt %q document, treating as empty: %v", Key, err)
		return nil
	}
	return orders
}

// WriteOrders encodes and stores the full order collection.
func WriteOrders(tx kv.Tx, orders []Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return tx.Put(Key, raw)
}

// WriteSeq stores the order id counter.
func WriteSeq(tx kv.Tx, seq int) error {
	return tx.Put(SeqKey, []byte(strconv.Itoa(seq)))
}

// readSeq returns the persisted counter. A store written before the counter
// existed falls back to the current order count, which continues the
// sequence the count-derived ids established.
func readSeq(tx kv.Tx, orders []Order) int {
	raw, err := tx.Get(SeqKey)
	if err != nil {
		return len(orders)
	}
	seq, err := strconv.Atoi(string(raw))
	if err != nil {
		log.Printf("order: corrupt %q document, falling back to order count: %v", SeqKey, err)
		return len(orders)
	}
	return seq
}

type kvRepo struct{ store kv.Store }

// NewKVRepository returns a Repository backed by the given document store.
func NewKVRepository(store kv.Store) Repository { return &kvRepo{store: store} }

func (r *kvRepo) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := r.store.View(ctx, func(tx kv.Tx) error {
		orders = ReadOrders(tx)
		return nil
	})
	return orders, err
}

func (r *kvRepo) Place(ctx context.Context, o *Order) error {
	return r.store.Update(ctx, func(tx kv.Tx) error {
		orders := ReadOrders(tx)

		seq := readSeq(tx, orders) + 1
		o.ID = fmt.Sprintf("ORD-%03d", seq)
		if err := WriteSeq(tx, seq); err != nil {
			return err
		}
		if err := WriteOrders(tx, append([]Order{*o}, orders...)); err != nil {
			return err
		}

		// Decrement stock for every line whose product still exists. No
		// floor at zero: an oversell drives stock negative and shows up as
		// such in the catalog.
		products := catalog.ReadProducts(tx)
		for _, item := range o.Items {
			for i := range products {
				if products[i].ID == item.Product.ID {
					products[i].Stock -= item.Quantity
					break
				}
			}
		}
		return catalog.WriteProducts(tx, products)
	})
}

func (r *kvRepo) UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	var updated *Order
	err := r.store.Update(ctx, func(tx kv.Tx) error {
		orders := ReadOrders(tx)
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				updated = &orders[i]
				return WriteOrders(tx, orders)
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
