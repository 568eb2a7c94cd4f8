package port

import (
	"context"

	"github.com/nikolayk812/foodcart/internal/domain"
)

// OrderSubmitter hands a composed order request to the backend order service.
// Implementations live outside this module; the cart core only builds the
// request. A successful submission is the caller's cue to clear the cart.
type OrderSubmitter interface {
	Submit(ctx context.Context, req domain.OrderRequest) error
}
