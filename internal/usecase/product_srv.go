package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"ecommerce-store/internal/catalog"
	"ecommerce-store/internal/data/entity"
	"ecommerce-store/internal/data/repository"
	"ecommerce-store/internal/dto/request"
	"ecommerce-store/internal/dto/response"
	"ecommerce-store/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadedImage is the optional image file attached to a create request.
type UploadedImage struct {
	Name        string
	ContentType string
	Content     io.Reader
}

type ProductService interface {
	GetProducts(ctx context.Context, spec catalog.FilterSpec, page request.PageRequest) (*response.ProductListResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest, image *UploadedImage) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetCategories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]entity.Product, error)
}

type productService struct {
	repo     repository.ProductRepository
	uploader storage.Uploader
	log      *zap.Logger
}

func NewProductService(
	repo repository.ProductRepository,
	uploader storage.Uploader,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo:     repo,
		uploader: uploader,
		log:      log.With(zap.String("service", "product")),
	}
}

// GetProducts scans the full catalog, runs the query engine over it and
// returns the visible page. Facets always come from the full dataset so the
// sidebar keeps showing every brand/category/rating.
func (s *productService) GetProducts(ctx context.Context, spec catalog.FilterSpec, page request.PageRequest) (*response.ProductListResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	filtered := catalog.Filter(products, spec)
	visible := catalog.Paginate(filtered, page.PerPage, page.Page)

	return &response.ProductListResponse{
		Products:   visible,
		Categories: catalog.Categories(products),
		Brands:     catalog.Brands(products),
		Ratings:    catalog.Ratings(products),
		Pagination: response.PaginationMeta{
			Page:       page.Page,
			PerPage:    page.PerPage,
			Total:      len(filtered),
			TotalPages: catalog.PageCount(filtered, page.PerPage),
		},
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest, image *UploadedImage) (*entity.Product, error) {
	imageURL := ""
	if image != nil {
		url, err := s.uploader.Save(ctx, image.Name, image.ContentType, image.Content)
		if err != nil {
			s.log.Error("Failed to store image",
				zap.Error(err),
				zap.String("filename", image.Name),
			)
			return nil, fmt.Errorf("store image: %w", err)
		}
		imageURL = url
	}

	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:          req.Name,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Rating:        req.Rating,
		Tag:           req.Tag,
		Image:         imageURL,
		Colors:        req.Colors,
	}
	if product.Colors == nil {
		product.Colors = []string{}
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		// Unknown identifier, same outcome as a miss
		return ErrNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info("Product deleted", zap.String("product_id", productID))
	return nil
}

func (s *productService) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Distinct(ctx, "category")
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *productService) Search(ctx context.Context, query string) ([]entity.Product, error) {
	products, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	if products == nil {
		products = []entity.Product{}
	}
	return products, nil
}
