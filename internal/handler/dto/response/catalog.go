package response

import (
	"time"

	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CatalogServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OfferingResponse struct {
	ID          uuid.UUID `json:"id"`
	PartnerID   uuid.UUID `json:"partnerId"`
	PartnerName string    `json:"partnerName"`
	CatalogID   uuid.UUID `json:"catalogId"`
	Title       string    `json:"title"`
	PriceCents  int64     `json:"priceCents"`
	DurationMin int32     `json:"durationMin"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

func FromCatalogServiceRM(rm *readmodel.CatalogServiceRM) *CatalogServiceResponse {
	return &CatalogServiceResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Category:    rm.Category,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromOfferingRM(rm *readmodel.OfferingRM) *OfferingResponse {
	return &OfferingResponse{
		ID:          rm.ID,
		PartnerID:   rm.PartnerID,
		PartnerName: rm.PartnerName,
		CatalogID:   rm.CatalogID,
		Title:       rm.Title,
		PriceCents:  rm.PriceCents,
		DurationMin: rm.DurationMin,
		Description: rm.Description,
		Available:   rm.Available,
	}
}
