package response

import (
	"time"

	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ID           uuid.UUID `json:"id"`
	OfferingID   uuid.UUID `json:"offeringId"`
	ServiceTitle string    `json:"serviceTitle"`
	PartnerID    uuid.UUID `json:"partnerId"`
	PartnerName  string    `json:"partnerName"`
	Quantity     int32     `json:"quantity"`
	PriceCents   int64     `json:"priceCents"`
	SubtotalCents int64    `json:"subtotalCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromCartItemRM(rm *readmodel.CartItemRM) *CartItemResponse {
	return &CartItemResponse{
		ID:            rm.ID,
		OfferingID:    rm.OfferingID,
		ServiceTitle:  rm.ServiceTitle,
		PartnerID:     rm.PartnerID,
		PartnerName:   rm.PartnerName,
		Quantity:      rm.Quantity,
		PriceCents:    rm.PriceCents,
		SubtotalCents: rm.PriceCents * int64(rm.Quantity),
		CreatedAt:     rm.CreatedAt,
	}
}
