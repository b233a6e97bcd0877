package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"ecommerce-store/internal/catalog"
	"ecommerce-store/internal/data/entity"
	"ecommerce-store/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) SearchByName(ctx context.Context, query string) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Distinct(ctx context.Context, field string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

type fakeUploader struct {
	lastName string
	saved    string
}

func (f *fakeUploader) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	f.lastName = originalName
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved = string(content)
	return "/uploads/" + originalName, nil
}

func catalogProduct(name, brand, category string, price, rating float64) entity.Product {
	return entity.Product{
		Base:     entity.Base{ID: uuid.New()},
		Name:     name,
		Brand:    brand,
		Category: category,
		Price:    price,
		Rating:   rating,
	}
}

func TestGetProductsFiltersAndPaginates(t *testing.T) {
	repo := &fakeProductRepo{}
	for i := 0; i < 12; i++ {
		repo.products = append(repo.products, catalogProduct("shoe", "Nike", "Shoes", 100, 4.5))
	}
	repo.products = append(repo.products, catalogProduct("bag", "Adidas", "Bags", 50, 3.0))

	svc := NewProductService(repo, &fakeUploader{}, zap.NewNop())

	spec := catalog.DefaultSpec(1000)
	spec.Brands = []string{"Nike"}

	resp, err := svc.GetProducts(context.Background(), spec, request.PageRequest{Page: 2, PerPage: 9})
	require.NoError(t, err)

	// 12 Nike products, page 2 of 9 holds the remaining 3
	assert.Len(t, resp.Products, 3)
	assert.Equal(t, 12, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	// Facets reflect the full dataset, not the filtered slice
	assert.ElementsMatch(t, []string{"Nike", "Adidas"}, resp.Brands)
	assert.ElementsMatch(t, []string{"Shoes", "Bags"}, resp.Categories)
	assert.ElementsMatch(t, []float64{4.5, 3.0}, resp.Ratings)
}

func TestCreateProductWithImage(t *testing.T) {
	repo := &fakeProductRepo{}
	uploader := &fakeUploader{}
	svc := NewProductService(repo, uploader, zap.NewNop())

	image := &UploadedImage{
		Name:        "sneaker.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	}

	product, err := svc.CreateProduct(context.Background(), &request.ProductRequest{
		Name:   "Air Max",
		Brand:  "Nike",
		Price:  129.99,
		Rating: 4.5,
		Colors: []string{"Red", "Black"},
	}, image)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/sneaker.png", product.Image)
	assert.Equal(t, "png-bytes", uploader.saved)
	assert.NotEqual(t, uuid.Nil, product.ID)
	require.Len(t, repo.products, 1)
	assert.Equal(t, "Air Max", repo.products[0].Name)
}

func TestCreateProductWithoutImage(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo, &fakeUploader{}, zap.NewNop())

	product, err := svc.CreateProduct(context.Background(), &request.ProductRequest{
		Name:  "Plain",
		Price: 10,
	}, nil)
	require.NoError(t, err)

	assert.Empty(t, product.Image)
	// Colors serialize as an empty array, never null
	assert.NotNil(t, product.Colors)
	assert.Empty(t, product.Colors)
}

func TestDeleteProduct(t *testing.T) {
	existing := catalogProduct("shoe", "Nike", "Shoes", 100, 4.5)
	repo := &fakeProductRepo{products: []entity.Product{existing}}
	svc := NewProductService(repo, &fakeUploader{}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, existing.ID.String()))
	assert.Empty(t, repo.products)

	// Deleting again misses
	assert.ErrorIs(t, svc.DeleteProduct(ctx, existing.ID.String()), ErrNotFound)

	// Malformed identifiers are a miss, not a server error
	assert.ErrorIs(t, svc.DeleteProduct(ctx, "not-a-uuid"), ErrNotFound)
}

func TestGetCategoriesNeverNil(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{}, &fakeUploader{}, zap.NewNop())

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	repo := &fakeProductRepo{products: []entity.Product{
		catalogProduct("Air Max", "Nike", "Shoes", 100, 4.5),
		catalogProduct("Gazelle", "Adidas", "Shoes", 80, 4.0),
	}}
	svc := NewProductService(repo, &fakeUploader{}, zap.NewNop())

	found, err := svc.Search(context.Background(), "air")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Air Max", found[0].Name)

	// A miss yields an empty list, never null
	none, err := svc.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
