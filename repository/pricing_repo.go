package repository

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/nagraajm/bls-exportpro/models"
)

type PricingRepository interface {
	Repository[*models.ProductPricing]
	FindByProductID(productID string, page, limit int) (Page[*models.ProductPricing], error)
	ActivePricing(productID string, priceType models.PriceType) ([]*models.ProductPricing, error)
	DeactivatePrevious(productID string, priceType models.PriceType) error
}

type PricingJSONRepo struct {
	*JSONStore[*models.ProductPricing]
}

func NewPricingJSONRepo(dataDir string) *PricingJSONRepo {
	return &PricingJSONRepo{NewJSONStore[*models.ProductPricing](filepath.Join(dataDir, "product-pricing.json"))}
}

func (r *PricingJSONRepo) FindByProductID(productID string, page, limit int) (Page[*models.ProductPricing], error) {
	matches, err := r.Find(func(p *models.ProductPricing) bool { return p.ProductID == productID })
	if err != nil {
		return Page[*models.ProductPricing]{}, err
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })

	data, total := paginateSlice(matches, page, limit)
	return Page[*models.ProductPricing]{
		Data:       data,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

// ActivePricing returns rows currently in their effective window, newest
// effectiveFrom first. An empty priceType matches all price types.
func (r *PricingJSONRepo) ActivePricing(productID string, priceType models.PriceType) ([]*models.ProductPricing, error) {
	now := time.Now().UTC()
	matches, err := r.Find(func(p *models.ProductPricing) bool {
		if p.ProductID != productID || !p.IsActive {
			return false
		}
		if p.EffectiveFrom.After(now) {
			return false
		}
		if p.EffectiveTo != nil && p.EffectiveTo.Before(now) {
			return false
		}
		return priceType == "" || p.PriceType == priceType
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].EffectiveFrom.After(matches[j].EffectiveFrom) })
	return matches, nil
}

func (r *PricingJSONRepo) DeactivatePrevious(productID string, priceType models.PriceType) error {
	active, err := r.Find(func(p *models.ProductPricing) bool {
		return p.ProductID == productID && p.PriceType == priceType && p.IsActive
	})
	if err != nil {
		return err
	}
	for _, row := range active {
		if _, err := r.Update(row.ID, func(p *models.ProductPricing) { p.IsActive = false }); err != nil {
			return err
		}
	}
	return nil
}
