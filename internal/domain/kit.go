package domain

import "slices"

// KitConstituent is one product line inside a kit bundle.
type KitConstituent struct {
	ProductID      string `json:"productId"`
	QuantityPerKit int    `json:"quantityPerKit"`
}

// Kit is a fixed bundle of products sold as a single purchasable unit.
// The first entry of PriceList is the authoritative kit price.
type Kit struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Status       string           `json:"status"`
	PriceList    []PriceVariant   `json:"priceList,omitempty"`
	Constituents []KitConstituent `json:"constituents,omitempty"`
}

func (k Kit) Clone() Kit {
	k.PriceList = slices.Clone(k.PriceList)
	k.Constituents = slices.Clone(k.Constituents)
	return k
}
