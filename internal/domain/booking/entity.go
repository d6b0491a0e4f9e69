package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrSlotCrossesMidnight = errors.New("slot must end within the same day")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrCancelCompleted     = errors.New("cannot cancel a completed booking")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrNotConfirmed        = errors.New("only confirmed bookings can be completed")
	ErrTerminalState       = errors.New("cannot reschedule a completed or cancelled booking")
)

// Booking is the central scheduling entity. Customer, partner and
// offering references are set once at creation and never reassigned.
type Booking struct {
	id          uuid.UUID
	customerID  uuid.UUID
	partnerID   uuid.UUID
	offeringID  uuid.UUID
	bookingDate time.Time
	slot        TimeRange
	status      Status
	priceCents  int64
	quantity    int32
	totalCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a customer-initiated booking in PENDING. Price and
// duration are snapshots; later catalog changes never alter the booking.
func NewBooking(
	customerID, partnerID, offeringID uuid.UUID,
	bookingDate time.Time,
	slot TimeRange,
	priceCents int64,
) (*Booking, error) {
	return newBooking(customerID, partnerID, offeringID, bookingDate, slot, priceCents, 1, StatusPending)
}

// NewConfirmedBooking creates a booking synthesized from a paid order
// item. Payment already cleared, so it starts in CONFIRMED.
func NewConfirmedBooking(
	customerID, partnerID, offeringID uuid.UUID,
	bookingDate time.Time,
	slot TimeRange,
	priceCents int64,
	quantity int32,
) (*Booking, error) {
	return newBooking(customerID, partnerID, offeringID, bookingDate, slot, priceCents, quantity, StatusConfirmed)
}

func newBooking(
	customerID, partnerID, offeringID uuid.UUID,
	bookingDate time.Time,
	slot TimeRange,
	priceCents int64,
	quantity int32,
	status Status,
) (*Booking, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Booking{
		id:          uuid.New(),
		customerID:  customerID,
		partnerID:   partnerID,
		offeringID:  offeringID,
		bookingDate: bookingDate,
		slot:        slot,
		status:      status,
		priceCents:  priceCents,
		quantity:    quantity,
		totalCents:  priceCents * int64(quantity),
	}, nil
}

func Reconstruct(
	id, customerID, partnerID, offeringID uuid.UUID,
	bookingDate time.Time,
	slot TimeRange,
	status Status,
	priceCents int64,
	quantity int32,
	totalCents int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		customerID:  customerID,
		partnerID:   partnerID,
		offeringID:  offeringID,
		bookingDate: bookingDate,
		slot:        slot,
		status:      status,
		priceCents:  priceCents,
		quantity:    quantity,
		totalCents:  totalCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Cancel marks the booking CANCELLED. CANCELLED is a tombstone, not a
// deletion; completed bookings can never be cancelled.
func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCompleted:
		return ErrCancelCompleted
	case StatusCancelled:
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// Complete moves CONFIRMED to COMPLETED; any other status is rejected.
func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusCompleted
	return nil
}

// Reschedule replaces the date and slot, keeping the current status.
func (b *Booking) Reschedule(bookingDate time.Time, slot TimeRange) error {
	if b.status.IsTerminal() {
		return ErrTerminalState
	}
	b.bookingDate = bookingDate
	b.slot = slot
	return nil
}

// ConflictsWith reports whether the candidate slot overlaps any of the
// given bookings on the same date. Cancelled bookings never block a
// slot, and the booking identified by exclude is skipped so a
// reschedule is not checked against itself.
func ConflictsWith(existing []*Booking, candidate TimeRange, exclude uuid.UUID) bool {
	for _, b := range existing {
		if b.status == StatusCancelled {
			continue
		}
		if b.id == exclude {
			continue
		}
		if b.slot.Overlaps(candidate) {
			return true
		}
	}
	return false
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) PartnerID() uuid.UUID  { return b.partnerID }
func (b *Booking) OfferingID() uuid.UUID { return b.offeringID }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) Slot() TimeRange       { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) PriceCents() int64     { return b.priceCents }
func (b *Booking) Quantity() int32       { return b.quantity }
func (b *Booking) TotalCents() int64     { return b.totalCents }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
