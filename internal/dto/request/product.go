package request

// ProductRequest carries the multipart form fields of POST /api/products.
// The image file travels separately.
type ProductRequest struct {
	Name          string   `form:"name" validate:"required"`
	Brand         string   `form:"brand"`
	Category      string   `form:"category"`
	Price         float64  `form:"price" validate:"gte=0"`
	OriginalPrice *float64 `form:"original_price" validate:"omitempty,gte=0"`
	Rating        float64  `form:"rating" validate:"gte=0,lte=5"`
	Tag           string   `form:"tag"`
	Colors        []string `form:"colors"`
}
