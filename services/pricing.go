package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

type PricingService struct {
	Pricing  repository.PricingRepository
	Products repository.ProductRepository
}

func NewPricingService(pricing repository.PricingRepository, products repository.ProductRepository) *PricingService {
	return &PricingService{Pricing: pricing, Products: products}
}

type CreatePricingInput struct {
	ProductID     string           `json:"productId" validate:"required"`
	PriceType     string           `json:"priceType" validate:"required,oneof=selling procurement market"`
	BasePrice     decimal.Decimal  `json:"basePrice"`
	Currency      string           `json:"currency" validate:"omitempty,oneof=INR USD"`
	EffectiveFrom *time.Time       `json:"effectiveFrom"`
	EffectiveTo   *time.Time       `json:"effectiveTo"`
	Margin        *decimal.Decimal `json:"margin"`
	Discountable  bool             `json:"discountable"`
	Notes         *string          `json:"notes"`
}

// Create records a new active price, retiring any earlier active price of the
// same type for the product. Admin-created prices are approved on the spot.
func (s *PricingService) Create(actor models.Actor, in CreatePricingInput) (*models.ProductPricing, error) {
	if !actor.CanManage() {
		return nil, Forbidden("Only administrators and managers can create pricing")
	}
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}
	if !in.BasePrice.IsPositive() {
		return nil, Invalid("basePrice must be greater than zero")
	}

	product, err := s.Products.FindByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, NotFound("Product not found")
	}

	priceType := models.PriceType(in.PriceType)
	if err := s.Pricing.DeactivatePrevious(in.ProductID, priceType); err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}
	effectiveFrom := time.Now().UTC()
	if in.EffectiveFrom != nil {
		effectiveFrom = *in.EffectiveFrom
	}

	pricing := &models.ProductPricing{
		ProductID:     in.ProductID,
		PriceType:     priceType,
		BasePrice:     in.BasePrice,
		Currency:      currency,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   in.EffectiveTo,
		IsActive:      true,
		Margin:        in.Margin,
		Discountable:  in.Discountable,
		Notes:         in.Notes,
		CreatedBy:     actor.ID,
	}
	if actor.IsAdmin() {
		pricing.ApprovedBy = &actor.ID
	}
	return s.Pricing.Create(pricing)
}

type UpdatePricingInput struct {
	BasePrice    *decimal.Decimal `json:"basePrice"`
	Currency     *string          `json:"currency" validate:"omitempty,oneof=INR USD"`
	EffectiveTo  *time.Time       `json:"effectiveTo"`
	Margin       *decimal.Decimal `json:"margin"`
	Discountable *bool            `json:"discountable"`
	Notes        *string          `json:"notes"`
}

// Update applies a partial change to an existing pricing row.
func (s *PricingService) Update(actor models.Actor, id string, in UpdatePricingInput) (*models.ProductPricing, error) {
	if !actor.CanManage() {
		return nil, Forbidden("Only administrators and managers can update pricing")
	}
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}
	if in.BasePrice != nil && !in.BasePrice.IsPositive() {
		return nil, Invalid("basePrice must be greater than zero")
	}

	pricing, err := s.Pricing.Update(id, func(p *models.ProductPricing) {
		if in.BasePrice != nil {
			p.BasePrice = *in.BasePrice
		}
		if in.Currency != nil {
			p.Currency = *in.Currency
		}
		if in.EffectiveTo != nil {
			p.EffectiveTo = in.EffectiveTo
		}
		if in.Margin != nil {
			p.Margin = in.Margin
		}
		if in.Discountable != nil {
			p.Discountable = *in.Discountable
		}
		if in.Notes != nil {
			p.Notes = in.Notes
		}
	})
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, NotFound("Pricing record not found")
	}
	return pricing, nil
}

func (s *PricingService) History(productID string, page, limit int) (repository.Page[*models.ProductPricing], error) {
	return s.Pricing.FindByProductID(productID, page, limit)
}

func (s *PricingService) Active(productID, priceType string) ([]*models.ProductPricing, error) {
	if priceType != "" && !models.ValidPriceType(priceType) {
		return nil, Invalid("Invalid price type")
	}
	return s.Pricing.ActivePricing(productID, models.PriceType(priceType))
}

func (s *PricingService) Approve(actor models.Actor, id string) (*models.ProductPricing, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("Only administrators can approve pricing")
	}

	existing, err := s.Pricing.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, NotFound("Pricing record not found")
	}
	if existing.ApprovedBy != nil {
		return nil, Conflict("Pricing record is already approved")
	}

	return s.Pricing.Update(id, func(p *models.ProductPricing) {
		p.ApprovedBy = &actor.ID
	})
}

func (s *PricingService) Delete(actor models.Actor, id string) error {
	if !actor.IsAdmin() {
		return Forbidden("Only administrators can delete pricing")
	}
	deleted, err := s.Pricing.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("Pricing record not found")
	}
	return nil
}
