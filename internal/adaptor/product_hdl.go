package adaptor

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ecommerce-store/internal/dto/request"
	"ecommerce-store/internal/dto/response"
	"ecommerce-store/internal/usecase"
	"ecommerce-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadSize caps the multipart form held in memory (10 MB)
const maxUploadSize = 10 << 20

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /api/products. Filter/sort/page parameters mirror
// the storefront's sidebar; without them the whole catalog comes back.
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	spec, page := request.ParseFilterQuery(r.URL.Query())

	resp, err := h.service.GetProducts(r.Context(), spec, page)
	if err != nil {
		h.handleServiceError(w, err, "get products")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// CreateProduct handles POST /api/products (multipart form, optional image)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req, err := h.parseProductForm(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	var image *usecase.UploadedImage
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image = &usecase.UploadedImage{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	product, err := h.service.CreateProduct(r.Context(), req, image)
	if err != nil {
		h.handleServiceError(w, err, "create product")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.ProductCreatedResponse{Product: *product})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		h.handleServiceError(w, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}

// GetCategories handles GET /api/categories
func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get categories")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.CategoriesResponse{Categories: categories})
}

// Search handles GET /api/search?q=
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "search products")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.SearchResponse{Products: products})
}

// parseProductForm reads the multipart fields into the request DTO
func (h *ProductHandler) parseProductForm(r *http.Request) (*request.ProductRequest, error) {
	req := &request.ProductRequest{
		Name:     r.FormValue("name"),
		Brand:    r.FormValue("brand"),
		Category: r.FormValue("category"),
		Tag:      r.FormValue("tag"),
	}

	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("price must be a number")
		}
		req.Price = price
	}

	if v := r.FormValue("original_price"); v != "" {
		originalPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("original_price must be a number")
		}
		req.OriginalPrice = &originalPrice
	}

	if v := r.FormValue("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("rating must be a number")
		}
		req.Rating = rating
	}

	if v := r.FormValue("colors"); v != "" {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				req.Colors = append(req.Colors, c)
			}
		}
	}

	return req, nil
}

func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Product not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
