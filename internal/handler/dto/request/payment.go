package request

import (
	"doorserve/internal/domain/booking"
	"doorserve/internal/usecase"

	"github.com/google/uuid"
)

type ItemScheduleRequest struct {
	OfferingID  uuid.UUID `json:"offering_id" binding:"required"`
	BookingDate string    `json:"booking_date" binding:"required"`
	StartTime   string    `json:"start_time" binding:"required"`
}

type CreateIntentRequest struct {
	Schedules []ItemScheduleRequest `json:"schedules"`
}

func (r CreateIntentRequest) ToParams() (usecase.CreateIntentParams, error) {
	schedules := make([]usecase.ItemSchedule, 0, len(r.Schedules))
	for _, s := range r.Schedules {
		date, err := booking.ParseDate(s.BookingDate)
		if err != nil {
			return usecase.CreateIntentParams{}, err
		}
		start, err := booking.ParseTimeOfDay(s.StartTime)
		if err != nil {
			return usecase.CreateIntentParams{}, err
		}
		schedules = append(schedules, usecase.ItemSchedule{
			OfferingID:  s.OfferingID,
			BookingDate: date,
			StartTime:   start,
		})
	}
	return usecase.CreateIntentParams{Schedules: schedules}, nil
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}
