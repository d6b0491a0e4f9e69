package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type PaymentIntentRM struct {
	ClientSecret    string
	PaymentIntentID string
	OrderID         uuid.UUID
}

type PaymentRM struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	PaymentIntentID string
	AmountCents     int64
	Currency        string
	Status          string
	PaymentMethod   string
}

type OrderRM struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	TotalCents  int64
	Status      string
	CreatedAt   time.Time
}

// OrderItemRM carries an optional schedule; only scheduled items are
// synthesized into bookings after payment confirmation.
type OrderItemRM struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	OfferingID  uuid.UUID
	PartnerID   uuid.UUID
	Quantity    int32
	PriceCents  int64
	BookingDate *time.Time
	StartTime   *string
	EndTime     *string
}
