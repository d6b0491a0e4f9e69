package response

import (
	"time"

	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"bookingId"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	PartnerID    uuid.UUID `json:"partnerId"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RatingStatsResponse struct {
	AverageRating float64       `json:"averageRating"`
	TotalReviews  int64         `json:"totalReviews"`
	Distribution  map[int]int64 `json:"distribution"`
}

func FromReviewRM(rm *readmodel.ReviewRM) *ReviewResponse {
	return &ReviewResponse{
		ID:           rm.ID,
		BookingID:    rm.BookingID,
		CustomerID:   rm.CustomerID,
		CustomerName: rm.CustomerName,
		PartnerID:    rm.PartnerID,
		Rating:       rm.Rating,
		Comment:      rm.Comment,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromRatingStatsRM(rm *readmodel.RatingStatsRM) *RatingStatsResponse {
	return &RatingStatsResponse{
		AverageRating: rm.AverageRating,
		TotalReviews:  rm.TotalReviews,
		Distribution:  rm.Distribution,
	}
}
