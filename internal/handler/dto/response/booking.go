package response

import (
	"time"

	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	PartnerID    uuid.UUID `json:"partnerId"`
	PartnerName  string    `json:"partnerName"`
	ServiceID    uuid.UUID `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	BookingDate  string    `json:"bookingDate"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"priceCents"`
	Quantity     int32     `json:"quantity"`
	TotalCents   int64     `json:"totalCents"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	PartnerName  string    `json:"partnerName"`
	ServiceName  string    `json:"serviceName"`
	BookingDate  string    `json:"bookingDate"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"totalCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		CustomerID:   rm.CustomerID,
		CustomerName: rm.CustomerName,
		PartnerID:    rm.PartnerID,
		PartnerName:  rm.PartnerName,
		ServiceID:    rm.OfferingID,
		ServiceName:  rm.ServiceName,
		BookingDate:  rm.BookingDate.Format("2006-01-02"),
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		PriceCents:   rm.PriceCents,
		Quantity:     rm.Quantity,
		TotalCents:   rm.TotalCents,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromBookingListRM(rm *readmodel.BookingListRM) *BookingListResponse {
	return &BookingListResponse{
		ID:           rm.ID,
		CustomerName: rm.CustomerName,
		PartnerName:  rm.PartnerName,
		ServiceName:  rm.ServiceName,
		BookingDate:  rm.BookingDate.Format("2006-01-02"),
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		TotalCents:   rm.TotalCents,
		CreatedAt:    rm.CreatedAt,
	}
}
