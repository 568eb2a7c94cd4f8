// cartctl is a small operator tool over persisted carts: inspect a shopper's
// snapshot, clear it, or preview the order request checkout would submit.
//
//	cartctl -owner <id> dump
//	cartctl -owner <id> clear
//	cartctl -owner <id> -customer <id> -restaurant <id> preview
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart/configs"
	"github.com/nikolayk812/foodcart/internal/cart"
	"github.com/nikolayk812/foodcart/internal/checkout"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/nikolayk812/foodcart/internal/pricing"
	"github.com/nikolayk812/foodcart/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cartctl:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath   = flag.String("config", "", "path to YAML config, env overrides apply")
		ownerID      = flag.String("owner", "", "cart owner id")
		customerID   = flag.String("customer", "", "customer id (preview)")
		restaurantID = flag.String("restaurant", "", "restaurant id (preview)")
	)
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		return fmt.Errorf("missing command: dump, clear or preview")
	}
	if *ownerID == "" {
		return fmt.Errorf("-owner is required")
	}

	cfg, err := configs.Load(*configPath)
	if err != nil {
		return fmt.Errorf("configs.Load: %w", err)
	}

	logger, err := newLogger(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("newLogger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	storage, cleanup, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("newStorage: %w", err)
	}
	defer cleanup()

	store, err := cart.NewStore(ctx, *ownerID, storage, logger)
	if err != nil {
		return fmt.Errorf("cart.NewStore: %w", err)
	}

	switch command {
	case "dump":
		return printJSON(store.Items())

	case "clear":
		store.Clear(ctx)
		return nil

	case "preview":
		if *customerID == "" || *restaurantID == "" {
			return fmt.Errorf("-customer and -restaurant are required for preview")
		}
		unit, err := currency.ParseISO(cfg.App.Currency)
		if err != nil {
			return fmt.Errorf("currency[%s] is not valid: %w", cfg.App.Currency, err)
		}
		composer := checkout.NewComposer(pricing.NewResolver(unit))
		req := composer.BuildOrderRequest(store.Items(), *customerID, *restaurantID, time.Now())
		return printJSON(req)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func newStorage(ctx context.Context, cfg configs.Config, logger *zap.Logger) (port.CartStorage, func(), error) {
	switch cfg.Storage.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		storage, err := repository.NewRedis(client, logger)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() { _ = client.Close() }, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		storage, err := repository.NewPostgres(pool, logger)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return storage, pool.Close, nil

	default:
		return repository.NewMemory(), func() {}, nil
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("zapcore.ParseLevel: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
