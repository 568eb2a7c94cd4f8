package checkout

import (
	"time"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/pricing"
)

// Composer turns a cart snapshot into a backend-ready order request.
// BuildOrderRequest is pure: it never mutates its input and has no side
// effects, so composing twice over the same snapshot yields identical output.
type Composer struct {
	resolver pricing.Resolver
}

func NewComposer(resolver pricing.Resolver) Composer {
	return Composer{resolver: resolver}
}

// BuildOrderRequest emits one direct line per product item and one line per
// kit constituent. The backend schema is product-centric: kits have no
// product identity of their own, so each kit purchase fans out into its
// constituent products, all tagged with the same kit id so the backend can
// group them back together.
func (c Composer) BuildOrderRequest(items []domain.CartItem, customerID, restaurantID string, now time.Time) domain.OrderRequest {
	lines := make([]domain.OrderLine, 0, len(items))

	for _, item := range items {
		switch item.Kind {
		case domain.ItemKindProduct:
			if item.Product == nil {
				continue
			}
			lines = append(lines, domain.OrderLine{
				ProductID:      item.Product.ID,
				Quantity:       item.Quantity,
				PriceVariantID: item.SelectedPriceVariantID,
			})

		case domain.ItemKindKit:
			if item.Kit == nil {
				continue
			}
			for _, constituent := range item.Kit.Constituents {
				lines = append(lines, domain.OrderLine{
					ProductID: constituent.ProductID,
					KitID:     item.Kit.ID,
					Quantity:  constituent.QuantityPerKit * item.Quantity,
				})
			}
		}
	}

	total := c.resolver.CartTotal(items)

	return domain.OrderRequest{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		OrderDate:    now.Unix(),
		TotalPrice:   total.Amount.InexactFloat64(),
		OrderDetail:  lines,
	}
}
