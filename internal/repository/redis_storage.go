package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisStorage struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis returns cart storage holding one JSON snapshot value per owner
// under cart:<ownerID>. Values carry no TTL, the cart survives sessions.
func NewRedis(client *redis.Client, logger *zap.Logger) (port.CartStorage, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisStorage{client: client, logger: logger}, nil
}

func cartKey(ownerID string) string {
	return "cart:" + ownerID
}

func (s *redisStorage) Load(ctx context.Context, ownerID string) ([]domain.CartItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	raw, err := s.client.Get(ctx, cartKey(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Error("corrupt cart snapshot, starting empty",
			zap.String("owner_id", ownerID), zap.Error(err))
		return nil, nil
	}

	return items, nil
}

func (s *redisStorage) Save(ctx context.Context, ownerID string, items []domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(ownerID), raw, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
