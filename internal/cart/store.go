package cart

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"go.uber.org/zap"
)

// Store holds the canonical in-memory cart list for one owner. Mutations
// merge by item identity and persist the whole snapshot after every change.
// Persistence is fire-and-forget: a failed write is logged and the in-memory
// state stays authoritative until the next successful write.
//
// Store is not safe for concurrent use; it models a single shopper session.
type Store struct {
	ownerID string
	storage port.CartStorage
	logger  *zap.Logger
	items   []domain.CartItem
}

// NewStore loads the persisted snapshot exactly once. A load failure is not
// fatal: the store starts with an empty cart and logs the cause.
func NewStore(ctx context.Context, ownerID string, storage port.CartStorage, logger *zap.Logger) (*Store, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	items, err := storage.Load(ctx, ownerID)
	if err != nil {
		logger.Warn("cart snapshot load failed, starting empty",
			zap.String("owner_id", ownerID), zap.Error(err))
		items = nil
	}

	return &Store{
		ownerID: ownerID,
		storage: storage,
		logger:  logger,
		items:   items,
	}, nil
}

// AddProduct merges into an existing item with the same product id and price
// variant selection, otherwise appends a new item.
func (s *Store) AddProduct(ctx context.Context, product domain.Product, quantity int, priceVariantID *string) {
	for i := range s.items {
		it := &s.items[i]
		if it.Kind == domain.ItemKindProduct &&
			it.RefID() == product.ID &&
			variantIDEqual(it.SelectedPriceVariantID, priceVariantID) {
			it.Quantity += quantity
			s.persist(ctx)
			return
		}
	}

	owned := product.Clone()
	s.items = append(s.items, domain.CartItem{
		ID:                     uuid.NewString(),
		Kind:                   domain.ItemKindProduct,
		Product:                &owned,
		Quantity:               quantity,
		SelectedPriceVariantID: cloneVariantID(priceVariantID),
	})
	s.persist(ctx)
}

// AddKit merges by kit id only; kits have no variant selection.
func (s *Store) AddKit(ctx context.Context, kit domain.Kit, quantity int) {
	for i := range s.items {
		it := &s.items[i]
		if it.Kind == domain.ItemKindKit && it.RefID() == kit.ID {
			it.Quantity += quantity
			s.persist(ctx)
			return
		}
	}

	owned := kit.Clone()
	s.items = append(s.items, domain.CartItem{
		ID:       uuid.NewString(),
		Kind:     domain.ItemKindKit,
		Kit:      &owned,
		Quantity: quantity,
	})
	s.persist(ctx)
}

// RemoveItem deletes the item with the given id. Unknown ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, itemID string) {
	s.items = slices.DeleteFunc(s.items, func(it domain.CartItem) bool {
		return it.ID == itemID
	})
	s.persist(ctx)
}

// SetQuantity overwrites the quantity of the matching item verbatim. Zero and
// negative values are stored as-is; removal on zero is a caller policy, not a
// store decision. Unknown ids are a no-op.
func (s *Store) SetQuantity(ctx context.Context, itemID string, quantity int) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// Clear empties the cart, e.g. after a successful order submission.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items returns a snapshot copy of the current cart list.
func (s *Store) Items() []domain.CartItem {
	return slices.Clone(s.items)
}

func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.ownerID, s.items); err != nil {
		s.logger.Warn("cart snapshot save failed, in-memory state kept",
			zap.String("owner_id", s.ownerID), zap.Error(err))
	}
}

func variantIDEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneVariantID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
