package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// CatalogServiceRM is a generic catalog entry.
type CatalogServiceRM struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}

// OfferingRM is a partner's concrete listing of a catalog service with
// its own price and duration.
type OfferingRM struct {
	ID          uuid.UUID
	PartnerID   uuid.UUID
	PartnerName string
	CatalogID   uuid.UUID
	Title       string
	PriceCents  int64
	DurationMin int32
	Description string
	Available   bool
}
