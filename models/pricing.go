package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PriceType string

const (
	PriceSelling     PriceType = "selling"
	PriceProcurement PriceType = "procurement"
	PriceMarket      PriceType = "market"
)

func ValidPriceType(s string) bool {
	switch PriceType(s) {
	case PriceSelling, PriceProcurement, PriceMarket:
		return true
	}
	return false
}

type ProductPricing struct {
	Base
	ProductID     string           `json:"productId"`
	PriceType     PriceType        `json:"priceType"`
	BasePrice     decimal.Decimal  `json:"basePrice"`
	Currency      string           `json:"currency"`
	EffectiveFrom time.Time        `json:"effectiveFrom"`
	EffectiveTo   *time.Time       `json:"effectiveTo,omitempty"`
	IsActive      bool             `json:"isActive"`
	Margin        *decimal.Decimal `json:"margin,omitempty"`
	Discountable  bool             `json:"discountable"`
	Notes         *string          `json:"notes,omitempty"`
	ApprovedBy    *string          `json:"approvedBy,omitempty"`
	CreatedBy     string           `json:"createdBy"`
}
