package request

import (
	"doorserve/internal/domain/booking"
	"doorserve/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PartnerID   uuid.UUID `json:"partner_id" binding:"required"`
	ServiceID   uuid.UUID `json:"service_id" binding:"required"`
	BookingDate string    `json:"booking_date" binding:"required"`
	StartTime   string    `json:"start_time" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required"`
	PriceCents  int64     `json:"price_cents" binding:"required"`
}

func (r CreateBookingRequest) ToParams() (usecase.CreateBookingParams, error) {
	date, err := booking.ParseDate(r.BookingDate)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}
	return usecase.CreateBookingParams{
		PartnerID:   r.PartnerID,
		ServiceID:   r.ServiceID,
		BookingDate: date,
		StartTime:   start,
		PriceCents:  r.PriceCents,
		DurationMin: r.DurationMin,
	}, nil
}

type RescheduleBookingRequest struct {
	BookingDate string `json:"booking_date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required"`
}

func (r RescheduleBookingRequest) ToParams() (usecase.RescheduleParams, error) {
	date, err := booking.ParseDate(r.BookingDate)
	if err != nil {
		return usecase.RescheduleParams{}, err
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return usecase.RescheduleParams{}, err
	}
	return usecase.RescheduleParams{
		BookingDate: date,
		StartTime:   start,
		DurationMin: r.DurationMin,
	}, nil
}
