package mock

import (
	"context"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
)

// TestimonialRepository is a mock implementation of
// repositories.TestimonialRepository
type TestimonialRepository struct {
	ListFunc   func(ctx context.Context) ([]models.Testimonial, error)
	CreateFunc func(ctx context.Context, testimonial *models.Testimonial) error
	UpdateFunc func(ctx context.Context, id int64, upd models.TestimonialUpdate) (*models.Testimonial, error)
	DeleteFunc func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewTestimonialRepository creates a new mock testimonial repository
func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{Calls: make(map[string][]interface{})}
}

func (m *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Testimonial{}, nil
}

func (m *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	m.Calls["Create"] = append(m.Calls["Create"], testimonial)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, testimonial)
	}
	return nil
}

func (m *TestimonialRepository) Update(ctx context.Context, id int64, upd models.TestimonialUpdate) (*models.Testimonial, error) {
	m.Calls["Update"] = append(m.Calls["Update"], id)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, repositories.ErrNotFound
}

func (m *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Ensure TestimonialRepository implements the interface
var _ repositories.TestimonialRepository = (*TestimonialRepository)(nil)
