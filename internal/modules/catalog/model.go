package catalog

// Product is an item in the boutique catalog. The JSON field names match the
// persisted document layout, so a store written by an older deployment reads
// back unchanged.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}
