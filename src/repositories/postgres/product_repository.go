package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = "id, name, description, icon_class, category, category_url, theme, is_featured, display_order, live_url, badge_text"

// ProductRepository is the PostgreSQL implementation of
// repositories.ProductRepository.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new product repository
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.IconClass, &p.Category,
		&p.CategoryURL, &p.Theme, &p.IsFeatured, &p.DisplayOrder, &p.LiveURL, &p.BadgeText)
}

// List returns all products ordered by display_order; rows without an order
// hint sort last, ties break on id.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY display_order ASC NULLS LAST, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Create inserts the product and fills in its generated id.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, icon_class, category, category_url, theme, is_featured, display_order, live_url, badge_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		product.Name, product.Description, product.IconClass, product.Category,
		product.CategoryURL, product.Theme, product.IsFeatured, product.DisplayOrder,
		product.LiveURL, product.BadgeText,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies the present fields in one statement and returns the
// updated row.
func (r *ProductRepository) Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	sql, args, err := buildUpdate("products", upd.Fields(), id, productColumns)
	if err != nil {
		return nil, err
	}

	var p models.Product
	err = scanProduct(r.pool.QueryRow(ctx, sql, args...), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &p, nil
}

// Delete removes the product, reporting ErrNotFound when no row matched.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.ProductRepository = (*ProductRepository)(nil)
