package pricing

import (
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Resolver computes prices over cart items. All amounts share the single
// storefront currency configured at construction.
//
// An unresolvable price (no variant selected, no match, empty price list)
// resolves to zero rather than an error; callers see an under-priced line,
// not a failed checkout.
type Resolver struct {
	currency currency.Unit
}

func NewResolver(unit currency.Unit) Resolver {
	return Resolver{currency: unit}
}

// UnitPrice resolves the per-unit price of one cart item. Product items use
// the selected price variant; kit items use the first entry of the kit price
// list.
func (r Resolver) UnitPrice(item domain.CartItem) domain.Money {
	switch item.Kind {
	case domain.ItemKindProduct:
		if item.Product == nil || item.SelectedPriceVariantID == nil {
			return r.zero()
		}
		for _, v := range item.Product.PriceVariants {
			if v.ID == *item.SelectedPriceVariantID {
				return r.money(v.Price)
			}
		}
		return r.zero()

	case domain.ItemKindKit:
		if item.Kit == nil || len(item.Kit.PriceList) == 0 {
			return r.zero()
		}
		return r.money(item.Kit.PriceList[0].Price)
	}

	return r.zero()
}

func (r Resolver) LineTotal(item domain.CartItem) domain.Money {
	return r.UnitPrice(item).MulInt(item.Quantity)
}

func (r Resolver) CartTotal(items []domain.CartItem) domain.Money {
	total := r.zero()
	for _, item := range items {
		total = total.Add(r.LineTotal(item))
	}
	return total
}

func (r Resolver) money(amount decimal.Decimal) domain.Money {
	return domain.Money{Amount: amount, Currency: r.currency}
}

func (r Resolver) zero() domain.Money {
	return domain.Money{Amount: decimal.Zero, Currency: r.currency}
}
