package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReviewRM struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	PartnerID    uuid.UUID
	Rating       int32
	Comment      string
	CreatedAt    time.Time
}

type RatingStatsRM struct {
	AverageRating float64
	TotalReviews  int64
	Distribution  map[int]int64
}
