package response

import "ecommerce-store/internal/data/entity"

// ProductListResponse is the GET /api/products body: the visible page plus
// facets derived from the full dataset.
type ProductListResponse struct {
	Products   []entity.Product `json:"products"`
	Categories []string         `json:"categories"`
	Brands     []string         `json:"brands"`
	Ratings    []float64        `json:"ratings"`
	Pagination PaginationMeta   `json:"pagination"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type ProductCreatedResponse struct {
	Product entity.Product `json:"product"`
}

type SearchResponse struct {
	Products []entity.Product `json:"products"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
