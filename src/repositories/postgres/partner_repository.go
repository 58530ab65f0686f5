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

const partnerColumns = "id, name, logo_url"

// PartnerRepository is the PostgreSQL implementation of
// repositories.PartnerRepository.
type PartnerRepository struct {
	pool *pgxpool.Pool
}

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

// List returns all partners ordered by id. Partners carry no display_order
// column; insertion order is the display order.
func (r *PartnerRepository) List(ctx context.Context) ([]models.Partner, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+partnerColumns+" FROM partners ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	partners := []models.Partner{}
	for rows.Next() {
		var p models.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.LogoURL); err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

// Create inserts the partner and fills in its generated id.
func (r *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	err := r.pool.QueryRow(ctx,
		"INSERT INTO partners (name, logo_url) VALUES ($1, $2) RETURNING id",
		partner.Name, partner.LogoURL,
	).Scan(&partner.ID)
	if err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// Update applies the present fields in one statement and returns the
// updated row.
func (r *PartnerRepository) Update(ctx context.Context, id int64, upd models.PartnerUpdate) (*models.Partner, error) {
	sql, args, err := buildUpdate("partners", upd.Fields(), id, partnerColumns)
	if err != nil {
		return nil, err
	}

	var p models.Partner
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.Name, &p.LogoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return &p, nil
}

// Delete removes the partner, reporting ErrNotFound when no row matched.
func (r *PartnerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM partners WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.PartnerRepository = (*PartnerRepository)(nil)
