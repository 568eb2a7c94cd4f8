package port

import (
	"context"

	"github.com/nikolayk812/foodcart/internal/domain"
)

// CartStorage persists the whole cart snapshot for one owner. Save replaces
// the stored value wholesale; there is no partial update.
type CartStorage interface {
	Load(ctx context.Context, ownerID string) ([]domain.CartItem, error)
	Save(ctx context.Context, ownerID string, items []domain.CartItem) error
}
