package mock

import (
	"context"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
)

// PartnerRepository is a mock implementation of repositories.PartnerRepository
type PartnerRepository struct {
	ListFunc   func(ctx context.Context) ([]models.Partner, error)
	CreateFunc func(ctx context.Context, partner *models.Partner) error
	UpdateFunc func(ctx context.Context, id int64, upd models.PartnerUpdate) (*models.Partner, error)
	DeleteFunc func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewPartnerRepository creates a new mock partner repository
func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{Calls: make(map[string][]interface{})}
}

func (m *PartnerRepository) List(ctx context.Context) ([]models.Partner, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Partner{}, nil
}

func (m *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	m.Calls["Create"] = append(m.Calls["Create"], partner)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, partner)
	}
	return nil
}

func (m *PartnerRepository) Update(ctx context.Context, id int64, upd models.PartnerUpdate) (*models.Partner, error) {
	m.Calls["Update"] = append(m.Calls["Update"], id)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, repositories.ErrNotFound
}

func (m *PartnerRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure PartnerRepository implements the interface
var _ repositories.PartnerRepository = (*PartnerRepository)(nil)
