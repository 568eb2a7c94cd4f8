package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
)

type memoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

// NewMemory returns non-durable in-process cart storage. It backs tests and
// the default driver when no external store is configured.
func NewMemory() port.CartStorage {
	return &memoryStorage{carts: make(map[string][]domain.CartItem)}
}

func (s *memoryStorage) Load(_ context.Context, ownerID string) ([]domain.CartItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.carts[ownerID]), nil
}

func (s *memoryStorage) Save(_ context.Context, ownerID string, items []domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[ownerID] = slices.Clone(items)
	return nil
}
