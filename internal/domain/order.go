package domain

// OrderLine is one backend order row. Direct product lines carry the optional
// price variant selection; kit-decomposed lines instead carry the KitID tag
// shared by all lines produced from the same kit purchase.
type OrderLine struct {
	ProductID      string  `json:"productId"`
	KitID          string  `json:"kitId,omitempty"`
	Quantity       int     `json:"quantity"`
	PriceVariantID *string `json:"priceVariantId,omitempty"`
}

// OrderRequest is the backend-consumable representation of a checked-out
// cart. OrderDate is epoch seconds, a hard backend contract.
type OrderRequest struct {
	CustomerID   string      `json:"customerId"`
	RestaurantID string      `json:"restaurantId"`
	OrderDate    int64       `json:"orderDate"`
	TotalPrice   float64     `json:"totalPrice"`
	OrderDetail  []OrderLine `json:"orderDetail"`
}
