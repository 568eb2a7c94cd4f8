package domain

type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindKit     ItemKind = "kit"
)

// CartItem is one entry in the shopper's in-progress selection. Exactly one
// of Product or Kit is set, matching Kind. SelectedPriceVariantID is only
// meaningful for product items; kits carry a single price list of their own.
type CartItem struct {
	ID                     string   `json:"id"`
	Kind                   ItemKind `json:"kind"`
	Product                *Product `json:"product,omitempty"`
	Kit                    *Kit     `json:"kit,omitempty"`
	Quantity               int      `json:"quantity"`
	SelectedPriceVariantID *string  `json:"selectedPriceVariantId,omitempty"`
}

// RefID returns the identifier of the embedded catalog snapshot.
func (i CartItem) RefID() string {
	switch i.Kind {
	case ItemKindProduct:
		if i.Product != nil {
			return i.Product.ID
		}
	case ItemKindKit:
		if i.Kit != nil {
			return i.Kit.ID
		}
	}
	return ""
}
