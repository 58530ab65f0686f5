package repositories

import (
	"context"

	"github.com/accuransi/website-api/src/models"
)

// PartnerRepository defines the interface for partner data access
type PartnerRepository interface {
	List(ctx context.Context) ([]models.Partner, error)
	Create(ctx context.Context, partner *models.Partner) error
	Update(ctx context.Context, id int64, upd models.PartnerUpdate) (*models.Partner, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// TestimonialRepository defines the interface for testimonial data access
type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, testimonial *models.Testimonial) error
	Update(ctx context.Context, id int64, upd models.TestimonialUpdate) (*models.Testimonial, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user data access. Update is the
// fixed two-branch variant: the username always changes, the password hash
// only when a new one is supplied.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id int64, username string, passwordHash *string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
