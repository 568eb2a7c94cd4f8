package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestRefID(t *testing.T) {
	productID := gofakeit.UUID()
	kitID := gofakeit.UUID()

	tests := []struct {
		name string
		item domain.CartItem
		want string
	}{
		{
			name: "product item",
			item: domain.CartItem{Kind: domain.ItemKindProduct, Product: &domain.Product{ID: productID}},
			want: productID,
		},
		{
			name: "kit item",
			item: domain.CartItem{Kind: domain.ItemKindKit, Kit: &domain.Kit{ID: kitID}},
			want: kitID,
		},
		{
			name: "kind without matching snapshot",
			item: domain.CartItem{Kind: domain.ItemKindProduct, Kit: &domain.Kit{ID: kitID}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.RefID())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	five := domain.Money{Amount: decimal.RequireFromString("5.50"), Currency: currency.USD}

	sum := five.Add(five)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("11.00")))

	tripled := five.MulInt(3)
	assert.True(t, tripled.Amount.Equal(decimal.RequireFromString("16.50")))

	negated := five.MulInt(-1)
	assert.True(t, negated.Amount.Equal(decimal.RequireFromString("-5.50")))
}

func TestCloneDetachesSlices(t *testing.T) {
	product := domain.Product{
		ID:            gofakeit.UUID(),
		PriceVariants: []domain.PriceVariant{{ID: gofakeit.UUID(), Price: decimal.NewFromInt(5)}},
	}

	clone := product.Clone()
	clone.PriceVariants[0].ID = "changed"

	assert.NotEqual(t, "changed", product.PriceVariants[0].ID)
}
