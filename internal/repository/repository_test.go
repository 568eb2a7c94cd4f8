package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../../migrations/01_cart_snapshots.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func startRedis(ctx context.Context) (*tcredis.RedisContainer, string, error) {
	redisContainer, err := tcredis.Run(ctx, "redis:7.4-alpine")
	if err != nil {
		return nil, "", fmt.Errorf("redis.Run: %w", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("rc.ConnectionString: %w", err)
	}

	return redisContainer, connStr, nil
}

func randomCartItems() []domain.CartItem {
	return []domain.CartItem{
		randomProductItem(),
		randomProductItem(),
		randomKitItem(),
	}
}

func randomProductItem() domain.CartItem {
	variantID := gofakeit.UUID()
	return domain.CartItem{
		ID:   gofakeit.UUID(),
		Kind: domain.ItemKindProduct,
		Product: &domain.Product{
			ID:     gofakeit.UUID(),
			Name:   gofakeit.Word(),
			Status: "available",
			PriceVariants: []domain.PriceVariant{
				{ID: variantID, Price: decimal.NewFromFloat(gofakeit.Price(1, 100))},
				{ID: gofakeit.UUID(), Price: decimal.NewFromFloat(gofakeit.Price(1, 100))},
			},
		},
		Quantity:               gofakeit.Number(1, 5),
		SelectedPriceVariantID: &variantID,
	}
}

func randomKitItem() domain.CartItem {
	return domain.CartItem{
		ID:   gofakeit.UUID(),
		Kind: domain.ItemKindKit,
		Kit: &domain.Kit{
			ID:     gofakeit.UUID(),
			Name:   gofakeit.Word(),
			Status: "available",
			PriceList: []domain.PriceVariant{
				{ID: gofakeit.UUID(), Price: decimal.NewFromFloat(gofakeit.Price(1, 100))},
			},
			Constituents: []domain.KitConstituent{
				{ProductID: gofakeit.UUID(), QuantityPerKit: 2},
				{ProductID: gofakeit.UUID(), QuantityPerKit: 1},
			},
		},
		Quantity: gofakeit.Number(1, 5),
	}
}

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected, actual, decimalComparer)
	assert.Empty(t, diff)
}
