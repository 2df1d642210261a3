package cart

// AddItemRequest adds a product to the cart. Quantity defaults to one
// unit when omitted.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// ChangeQuantityRequest adjusts an existing line by a signed delta.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}
