//go:build unit

package booking_test

import (
	"testing"
	"time"

	"doorserve/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, start string, durationMin int) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		uuid.New(), uuid.New(), uuid.New(),
		booking.NewDate(2026, time.June, 1),
		mustRange(t, start, durationMin),
		5000,
	)
	require.NoError(t, err)
	return b
}

func confirmBooking(t *testing.T, start string, durationMin int) *booking.Booking {
	t.Helper()
	b, err := booking.NewConfirmedBooking(
		uuid.New(), uuid.New(), uuid.New(),
		booking.NewDate(2026, time.June, 1),
		mustRange(t, start, durationMin),
		5000, 2,
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending with quantity one", func(t *testing.T) {
		b := newTestBooking(t, "10:00", 60)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int32(1), b.Quantity())
		assert.Equal(t, int64(5000), b.TotalCents())
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := booking.NewBooking(
			uuid.New(), uuid.New(), uuid.New(),
			booking.NewDate(2026, time.June, 1),
			mustRange(t, "10:00", 60),
			-1,
		)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("confirmed booking multiplies price by quantity", func(t *testing.T) {
		b := confirmBooking(t, "10:00", 60)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, int64(10000), b.TotalCents())
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("cancels a pending booking", func(t *testing.T) {
		b := newTestBooking(t, "10:00", 60)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancels a confirmed booking", func(t *testing.T) {
		b := confirmBooking(t, "10:00", 60)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("rejects cancelling a completed booking", func(t *testing.T) {
		b := confirmBooking(t, "10:00", 60)
		require.NoError(t, b.Complete())
		assert.ErrorIs(t, b.Cancel(), booking.ErrCancelCompleted)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		b := newTestBooking(t, "10:00", 60)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("completes a confirmed booking", func(t *testing.T) {
		b := confirmBooking(t, "10:00", 60)
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("rejects completing a pending booking", func(t *testing.T) {
		b := newTestBooking(t, "10:00", 60)
		assert.ErrorIs(t, b.Complete(), booking.ErrNotConfirmed)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("rejects completing a cancelled booking", func(t *testing.T) {
		b := newTestBooking(t, "10:00", 60)
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Complete(), booking.ErrNotConfirmed)
	})
}

func TestBookingReschedule(t *testing.T) {
	newDate := booking.NewDate(2026, time.June, 8)

	t.Run("moves date and slot", func(t *testing.T) {
		b := newTestBooking(t, "10:00", 60)
		slot := mustRange(t, "14:00", 60)

		require.NoError(t, b.Reschedule(newDate, slot))
		assert.Equal(t, newDate, b.BookingDate())
		assert.Equal(t, slot, b.Slot())
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("rejects terminal states", func(t *testing.T) {
		cancelled := newTestBooking(t, "10:00", 60)
		require.NoError(t, cancelled.Cancel())
		assert.ErrorIs(t, cancelled.Reschedule(newDate, mustRange(t, "14:00", 60)), booking.ErrTerminalState)

		completed := confirmBooking(t, "10:00", 60)
		require.NoError(t, completed.Complete())
		assert.ErrorIs(t, completed.Reschedule(newDate, mustRange(t, "14:00", 60)), booking.ErrTerminalState)
	})
}

func TestConflictsWith(t *testing.T) {
	existing := []*booking.Booking{
		newTestBooking(t, "09:00", 60), // [09:00,10:00)
		newTestBooking(t, "13:00", 90), // [13:00,14:30)
	}

	t.Run("detects overlap", func(t *testing.T) {
		assert.True(t, booking.ConflictsWith(existing, mustRange(t, "09:30", 60), uuid.Nil))
		assert.True(t, booking.ConflictsWith(existing, mustRange(t, "13:00", 90), uuid.Nil))
	})

	t.Run("touching slots do not conflict", func(t *testing.T) {
		assert.False(t, booking.ConflictsWith(existing, mustRange(t, "10:00", 60), uuid.Nil))
		assert.False(t, booking.ConflictsWith(existing, mustRange(t, "08:00", 60), uuid.Nil))
		assert.False(t, booking.ConflictsWith(existing, mustRange(t, "14:30", 60), uuid.Nil))
	})

	t.Run("cancelled bookings never block", func(t *testing.T) {
		cancelled := newTestBooking(t, "11:00", 60)
		require.NoError(t, cancelled.Cancel())

		assert.False(t, booking.ConflictsWith([]*booking.Booking{cancelled}, mustRange(t, "11:00", 60), uuid.Nil))
	})

	t.Run("excluded booking is skipped", func(t *testing.T) {
		own := newTestBooking(t, "11:00", 60)
		others := []*booking.Booking{own}

		// Moving within its own slot is fine, but another booking's slot is not.
		assert.False(t, booking.ConflictsWith(others, mustRange(t, "11:30", 60), own.ID()))
		assert.True(t, booking.ConflictsWith(others, mustRange(t, "11:30", 60), uuid.Nil))
	})
}

func TestNewStatus(t *testing.T) {
	t.Run("is case-insensitive", func(t *testing.T) {
		for _, s := range []string{"PENDING", "Pending", "pending"} {
			status, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, booking.StatusPending, status)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
