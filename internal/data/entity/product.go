package entity

// Product is a catalog record. Price and rating are non-negative and
// rating stays within [0,5]; both are enforced at validation and again by
// database check constraints.
type Product struct {
	Base
	Name          string   `db:"name" json:"name"`
	Brand         string   `db:"brand" json:"brand"`
	Category      string   `db:"category" json:"category"`
	Price         float64  `db:"price" json:"price"`
	OriginalPrice *float64 `db:"original_price" json:"original_price,omitempty"`
	Rating        float64  `db:"rating" json:"rating"`
	Tag           string   `db:"tag" json:"tag"`
	Image         string   `db:"image" json:"image"`
	Colors        []string `db:"colors" json:"colors"`
}
