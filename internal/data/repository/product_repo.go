package repository

import (
	"context"
	"fmt"

	"ecommerce-store/internal/data/entity"
	"ecommerce-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	SearchByName(ctx context.Context, query string) ([]entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Distinct(ctx context.Context, field string) ([]string, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, brand, category, price, original_price, rating, tag, image, colors, created_at`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, brand, category, price, original_price,
		                      rating, tag, image, colors, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Brand,
		product.Category,
		product.Price,
		product.OriginalPrice,
		product.Rating,
		product.Tag,
		product.Image,
		product.Colors,
		product.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Brand, &p.Category, &p.Price, &p.OriginalPrice,
		&p.Rating, &p.Tag, &p.Image, &p.Colors, &p.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &p, nil
}

// FindAll returns the full catalog in insertion order. The query engine
// filters and paginates the result in memory.
func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SearchByName is a case-insensitive substring match against the name field.
func (r *productRepository) SearchByName(ctx context.Context, query string) ([]entity.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		r.log.Error("Failed to search products",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search products %q: %w", query, err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Delete reports whether a row was removed so callers can distinguish a miss.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return false, fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// distinctFields whitelists the columns Distinct may touch.
var distinctFields = map[string]bool{
	"brand":    true,
	"category": true,
	"tag":      true,
}

func (r *productRepository) Distinct(ctx context.Context, field string) ([]string, error) {
	if !distinctFields[field] {
		return nil, fmt.Errorf("distinct on unsupported field %q", field)
	}

	query := fmt.Sprintf(`SELECT DISTINCT %s FROM products WHERE %s <> '' ORDER BY %s`, field, field, field)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get distinct values",
			zap.Error(err),
			zap.String("field", field),
		)
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan distinct value: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct rows: %w", err)
	}

	return values, nil
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Brand, &p.Category, &p.Price, &p.OriginalPrice,
			&p.Rating, &p.Tag, &p.Image, &p.Colors, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
