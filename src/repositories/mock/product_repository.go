package mock

import (
	"context"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
)

// ProductRepository is a mock implementation of repositories.ProductRepository
type ProductRepository struct {
	ListFunc   func(ctx context.Context) ([]models.Product, error)
	CreateFunc func(ctx context.Context, product *models.Product) error
	UpdateFunc func(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error)
	DeleteFunc func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewProductRepository creates a new mock product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{Calls: make(map[string][]interface{})}
}

func (m *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Product{}, nil
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	m.Calls["Create"] = append(m.Calls["Create"], product)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *ProductRepository) Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	m.Calls["Update"] = append(m.Calls["Update"], id)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, repositories.ErrNotFound
}

func (m *ProductRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure ProductRepository implements the interface
var _ repositories.ProductRepository = (*ProductRepository)(nil)
