package response

import (
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PaymentIntentResponse struct {
	ClientSecret    string    `json:"clientSecret"`
	PaymentIntentID string    `json:"paymentIntentId"`
	OrderID         uuid.UUID `json:"orderId"`
}

type ConfirmPaymentResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

func FromPaymentIntentRM(rm *readmodel.PaymentIntentRM) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		ClientSecret:    rm.ClientSecret,
		PaymentIntentID: rm.PaymentIntentID,
		OrderID:         rm.OrderID,
	}
}

func FromConfirmedBookings(rms []*readmodel.BookingRM) *ConfirmPaymentResponse {
	bookings := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		bookings[i] = FromBookingRM(rm)
	}
	return &ConfirmPaymentResponse{Bookings: bookings}
}
