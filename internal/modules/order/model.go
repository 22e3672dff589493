package order

import "github.com/sanvicreation/boutique-backend/internal/modules/catalog"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

// ValidStatus reports whether s is one of the three recognised statuses.
// Transitions between them are unrestricted; there is no terminal state.
func ValidStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// LineItem is a (product, quantity) pair. The product is copied by value at
// checkout, so later catalog edits never change a historical order.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Order is a placed customer order. Total is a snapshot of the line amounts
// at placement time and is never recomputed. Status is the only field that
// changes after creation.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Date         string      `json:"date"` // calendar date, 2006-01-02
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Items        []LineItem  `json:"items"`
}
