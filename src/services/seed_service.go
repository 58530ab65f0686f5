package services

import (
	"context"
	"fmt"
	"os"

	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// seedFile mirrors the YAML layout of a content seed document.
type seedFile struct {
	Partners []struct {
		Name    string `yaml:"name"`
		LogoURL string `yaml:"logo_url"`
	} `yaml:"partners"`
	Products []struct {
		Name         string  `yaml:"name"`
		Description  *string `yaml:"description"`
		IconClass    string  `yaml:"icon_class"`
		Category     *string `yaml:"category"`
		CategoryURL  *string `yaml:"category_url"`
		Theme        *string `yaml:"theme"`
		IsFeatured   bool    `yaml:"is_featured"`
		DisplayOrder *int    `yaml:"display_order"`
		LiveURL      *string `yaml:"live_url"`
		BadgeText    *string `yaml:"badge_text"`
	} `yaml:"products"`
	Testimonials []struct {
		Quote        string  `yaml:"quote"`
		ClientName   string  `yaml:"client_name"`
		ClientTitle  *string `yaml:"client_title"`
		ImageURL     *string `yaml:"image_url"`
		DisplayOrder *int    `yaml:"display_order"`
	} `yaml:"testimonials"`
}

// SeedService loads initial site content from a YAML file on first run.
// Each section is applied only when its table is still empty, so restarting
// the server never duplicates or overwrites admin-edited content.
type SeedService struct {
	partners     repositories.PartnerRepository
	products     repositories.ProductRepository
	testimonials repositories.TestimonialRepository
}

// NewSeedService creates a new seed service
func NewSeedService(partners repositories.PartnerRepository, products repositories.ProductRepository, testimonials repositories.TestimonialRepository) *SeedService {
	return &SeedService{partners: partners, products: products, testimonials: testimonials}
}

// Apply reads the seed file and populates empty content tables.
func (s *SeedService) Apply(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := s.seedPartners(ctx, seed); err != nil {
		return err
	}
	if err := s.seedProducts(ctx, seed); err != nil {
		return err
	}
	return s.seedTestimonials(ctx, seed)
}

func (s *SeedService) seedPartners(ctx context.Context, seed seedFile) error {
	if len(seed.Partners) == 0 {
		return nil
	}
	existing, err := s.partners.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check partners: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range seed.Partners {
		partner := &models.Partner{Name: p.Name, LogoURL: p.LogoURL}
		if err := s.partners.Create(ctx, partner); err != nil {
			return fmt.Errorf("failed to seed partner %q: %w", p.Name, err)
		}
	}
	log.Info().Int("count", len(seed.Partners)).Msg("seeded partners")
	return nil
}

func (s *SeedService) seedProducts(ctx context.Context, seed seedFile) error {
	if len(seed.Products) == 0 {
		return nil
	}
	existing, err := s.products.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range seed.Products {
		product := &models.Product{
			Name:         p.Name,
			Description:  p.Description,
			IconClass:    p.IconClass,
			Category:     p.Category,
			CategoryURL:  p.CategoryURL,
			Theme:        p.Theme,
			IsFeatured:   p.IsFeatured,
			DisplayOrder: p.DisplayOrder,
			LiveURL:      p.LiveURL,
			BadgeText:    p.BadgeText,
		}
		if err := s.products.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}
	log.Info().Int("count", len(seed.Products)).Msg("seeded products")
	return nil
}

func (s *SeedService) seedTestimonials(ctx context.Context, seed seedFile) error {
	if len(seed.Testimonials) == 0 {
		return nil
	}
	existing, err := s.testimonials.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check testimonials: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, t := range seed.Testimonials {
		testimonial := &models.Testimonial{
			Quote:        t.Quote,
			ClientName:   t.ClientName,
			ClientTitle:  t.ClientTitle,
			ImageURL:     t.ImageURL,
			DisplayOrder: t.DisplayOrder,
		}
		if err := s.testimonials.Create(ctx, testimonial); err != nil {
			return fmt.Errorf("failed to seed testimonial for %q: %w", t.ClientName, err)
		}
	}
	log.Info().Int("count", len(seed.Testimonials)).Msg("seeded testimonials")
	return nil
}
