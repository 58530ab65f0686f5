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

const testimonialColumns = "id, quote, client_name, client_title, image_url, display_order"

// TestimonialRepository is the PostgreSQL implementation of
// repositories.TestimonialRepository.
type TestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

func scanTestimonial(row pgx.Row, t *models.Testimonial) error {
	return row.Scan(&t.ID, &t.Quote, &t.ClientName, &t.ClientTitle, &t.ImageURL, &t.DisplayOrder)
}

// List returns all testimonials ordered by display_order; rows without an
// order hint sort last, ties break on id.
func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+testimonialColumns+" FROM testimonials ORDER BY display_order ASC NULLS LAST, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := scanTestimonial(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// Create inserts the testimonial and fills in its generated id.
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO testimonials (quote, client_name, client_title, image_url, display_order)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		testimonial.Quote, testimonial.ClientName, testimonial.ClientTitle,
		testimonial.ImageURL, testimonial.DisplayOrder,
	).Scan(&testimonial.ID)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// Update applies the present fields in one statement and returns the
// updated row.
func (r *TestimonialRepository) Update(ctx context.Context, id int64, upd models.TestimonialUpdate) (*models.Testimonial, error) {
	sql, args, err := buildUpdate("testimonials", upd.Fields(), id, testimonialColumns)
	if err != nil {
		return nil, err
	}

	var t models.Testimonial
	err = scanTestimonial(r.pool.QueryRow(ctx, sql, args...), &t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	return &t, nil
}

// Delete removes the testimonial, reporting ErrNotFound when no row matched.
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM testimonials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.TestimonialRepository = (*TestimonialRepository)(nil)
