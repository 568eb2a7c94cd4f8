package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"go.uber.org/zap"
)

type postgresStorage struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns cart storage backed by a single jsonb snapshot row per
// owner, see migrations/01_cart_snapshots.up.sql.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) (port.CartStorage, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &postgresStorage{pool: pool, logger: logger}, nil
}

func (s *postgresStorage) Load(ctx context.Context, ownerID string) ([]domain.CartItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT items FROM cart_snapshots WHERE owner_id = $1`, ownerID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pool.QueryRow: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// a snapshot this store cannot read is treated as absent
		s.logger.Error("corrupt cart snapshot, starting empty",
			zap.String("owner_id", ownerID), zap.Error(err))
		return nil, nil
	}

	return items, nil
}

func (s *postgresStorage) Save(ctx context.Context, ownerID string, items []domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO cart_snapshots (owner_id, items, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (owner_id)
		 DO UPDATE SET items = EXCLUDED.items, updated_at = now()`,
		ownerID, raw)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
