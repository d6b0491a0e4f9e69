package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	OfferingID uuid.UUID `json:"offering_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"required,min=1"`
}

// Quantity is a pointer so zero and negative values reach the usecase,
// which treats them as removal.
type UpdateCartItemRequest struct {
	Quantity *int32 `json:"quantity" binding:"required"`
}
