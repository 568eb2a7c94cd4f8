package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PriceVariant is one named price point for a product, e.g. a size.
type PriceVariant struct {
	ID    string          `json:"id"`
	Price decimal.Decimal `json:"price"`
}

// Product is a catalog snapshot. Once embedded in a cart item it is owned by
// the cart and never re-fetched.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	PriceVariants []PriceVariant `json:"priceVariants,omitempty"`
}

func (p Product) Clone() Product {
	p.PriceVariants = slices.Clone(p.PriceVariants)
	return p
}
