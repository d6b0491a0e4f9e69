//go:build unit || e2e

package builder

import (
	"time"

	reqdto "doorserve/internal/handler/dto/request"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
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
	DurationMin  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "Test Customer",
		PartnerID:    uuid.New(),
		PartnerName:  "Test Partner",
		OfferingID:   uuid.New(),
		ServiceName:  "Deep Cleaning",
		BookingDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "12:00",
		Status:       "pending",
		PriceCents:   8500,
		Quantity:     1,
		DurationMin:  120,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		PartnerID:    b.PartnerID,
		PartnerName:  b.PartnerName,
		OfferingID:   b.OfferingID,
		ServiceName:  b.ServiceName,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		PriceCents:   b.PriceCents,
		Quantity:     b.Quantity,
		TotalCents:   b.PriceCents * int64(b.Quantity),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListRM() *readmodel.BookingListRM {
	return &readmodel.BookingListRM{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		PartnerID:    b.PartnerID,
		PartnerName:  b.PartnerName,
		ServiceName:  b.ServiceName,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		TotalCents:   b.PriceCents * int64(b.Quantity),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PartnerID:   b.PartnerID,
		ServiceID:   b.OfferingID,
		BookingDate: b.BookingDate.Format("2006-01-02"),
		StartTime:   b.StartTime,
		DurationMin: b.DurationMin,
		PriceCents:  b.PriceCents,
	}
}

func (b *BookingBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleBookingRequest {
	return reqdto.RescheduleBookingRequest{
		BookingDate: b.BookingDate.Format("2006-01-02"),
		StartTime:   b.StartTime,
		DurationMin: b.DurationMin,
	}
}
