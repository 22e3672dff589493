package cart

import "github.com/sanvicreation/boutique-backend/internal/modules/order"

// Cart is a transient shopping cart. Carts are never persisted; they live in
// process memory for the duration of a browsing session and vanish on
// restart or checkout.
type Cart struct {
	ID    string           `json:"id"`
	Items []order.LineItem `json:"items"`
	Total float64          `json:"total"`
}

func (c *Cart) recalc() {
	c.Total = 0
	for _, item := range c.Items {
		c.Total += item.Product.Price * float64(item.Quantity)
	}
}
