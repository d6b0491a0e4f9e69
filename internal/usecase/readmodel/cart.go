package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CartItemRM struct {
	ID           uuid.UUID
	OfferingID   uuid.UUID
	ServiceTitle string
	PartnerID    uuid.UUID
	PartnerName  string
	Quantity     int32
	PriceCents   int64
	CreatedAt    time.Time
}
