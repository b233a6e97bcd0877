package wire

import (
	"ecommerce-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	r.Get("/api/products", productHandler.GetProducts)
	r.Post("/api/products", productHandler.CreateProduct)
	r.Delete("/api/products/{id}", productHandler.DeleteProduct)

	r.Get("/api/categories", productHandler.GetCategories)
	r.Get("/api/search", productHandler.Search)
}
