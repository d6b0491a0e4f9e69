package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the external representation of a booking with party
// display names resolved by joining identity records.
type BookingRM struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	PartnerID    uuid.UUID
	PartnerName  string
	OfferingID   uuid.UUID
	ServiceName  string
	BookingDate  time.Time
	StartTime    string
	EndTime      string
	Status       string
	PriceCents   int64
	Quantity     int32
	TotalCents   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BookingListRM struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	PartnerID    uuid.UUID
	PartnerName  string
	ServiceName  string
	BookingDate  time.Time
	StartTime    string
	EndTime      string
	Status       string
	TotalCents   int64
	CreatedAt    time.Time
}
