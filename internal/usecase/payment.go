package usecase

import (
	"context"
	"errors"
	"time"

	"doorserve/internal/domain/booking"
	"doorserve/internal/domain/user"
	"doorserve/internal/infra"
	"doorserve/internal/infra/db"
	"doorserve/internal/infra/payment"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCartEmpty               = errors.New("cart is empty")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentAccessDenied     = errors.New("no access to this payment")
	ErrPaymentNotSucceeded     = errors.New("payment has not succeeded")
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed")
	ErrPaymentGatewayFailed    = errors.New("payment gateway request failed")
)

// ItemSchedule pins a cart offering to a concrete slot. Offerings
// without a schedule are bought unscheduled and never become bookings.
type ItemSchedule struct {
	OfferingID  uuid.UUID
	BookingDate time.Time
	StartTime   booking.TimeOfDay
}

type CreateIntentParams struct {
	Schedules []ItemSchedule
}

// NewOrderItem is the write model for an order line. Schedule fields
// are nil for unscheduled purchases.
type NewOrderItem struct {
	OfferingID  uuid.UUID
	PartnerID   uuid.UUID
	Quantity    int32
	PriceCents  int64
	BookingDate *string
	StartTime   *string
	EndTime     *string
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, tx db.DBTX, customerID uuid.UUID, totalCents int64, items []NewOrderItem) (uuid.UUID, error)
	FindOrderByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.OrderRM, error)
	FindOrderItems(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]*readmodel.OrderItemRM, error)
	MarkOrderPaid(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *readmodel.PaymentRM, orderID uuid.UUID) error
	UpdateStatus(ctx context.Context, tx db.DBTX, paymentIntentID, status string) error
	FindByIntentID(ctx context.Context, tx db.DBTX, paymentIntentID string) (*readmodel.PaymentRM, uuid.UUID, error)
}

type PaymentUseCase interface {
	CreateIntent(ctx context.Context, actor Actor, params CreateIntentParams) (*readmodel.PaymentIntentRM, error)
	Confirm(ctx context.Context, actor Actor, paymentIntentID string) ([]*readmodel.BookingRM, error)
}

type paymentUseCaseImpl struct {
	paymentRepo PaymentRepository
	orderRepo   OrderRepository
	cartRepo    CartRepository
	bookingRepo BookingRepository
	catalog     OfferingCatalog
	gateway     payment.Gateway
	pool        *pgxpool.Pool
	currency    string
}

func NewPaymentUseCase(
	paymentRepo PaymentRepository,
	orderRepo OrderRepository,
	cartRepo CartRepository,
	bookingRepo BookingRepository,
	catalog OfferingCatalog,
	gateway payment.Gateway,
	pool *pgxpool.Pool,
	currency string,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		bookingRepo: bookingRepo,
		catalog:     catalog,
		gateway:     gateway,
		pool:        pool,
		currency:    currency,
	}
}

func (u *paymentUseCaseImpl) CreateIntent(ctx context.Context, actor Actor, params CreateIntentParams) (*readmodel.PaymentIntentRM, error) {
	if actor.Role != user.RoleCustomer {
		return nil, ErrPaymentAccessDenied
	}

	cartItems, err := u.cartRepo.FindByCustomer(ctx, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	schedules := make(map[uuid.UUID]ItemSchedule, len(params.Schedules))
	for _, s := range params.Schedules {
		schedules[s.OfferingID] = s
	}

	var totalCents int64
	orderItems := make([]NewOrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		totalCents += item.PriceCents * int64(item.Quantity)

		orderItem := NewOrderItem{
			OfferingID: item.OfferingID,
			PartnerID:  item.PartnerID,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		}
		if s, ok := schedules[item.OfferingID]; ok {
			slot, err := u.resolveSlot(ctx, item.OfferingID, s.StartTime)
			if err != nil {
				return nil, err
			}
			date := s.BookingDate.Format("2006-01-02")
			start := slot.Start().String()
			end := slot.End().String()
			orderItem.BookingDate = &date
			orderItem.StartTime = &start
			orderItem.EndTime = &end
		}
		orderItems = append(orderItems, orderItem)
	}

	return db.RunInTx(ctx, u.pool, func(tx db.DBTX) (*readmodel.PaymentIntentRM, error) {
		orderID, err := u.orderRepo.CreateOrder(ctx, tx, actor.ID, totalCents, orderItems)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}

		intent, err := u.gateway.CreateIntent(ctx, totalCents, u.currency, orderID)
		if err != nil {
			return nil, errs.Mark(err, ErrPaymentGatewayFailed)
		}

		paymentRow := &readmodel.PaymentRM{
			ID:              uuid.New(),
			CustomerID:      actor.ID,
			PaymentIntentID: intent.ID,
			AmountCents:     totalCents,
			Currency:        intent.Currency,
			Status:          "pending",
			PaymentMethod:   "card",
		}
		if err := u.paymentRepo.Create(ctx, tx, paymentRow, orderID); err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}

		return &readmodel.PaymentIntentRM{
			ClientSecret:    intent.ClientSecret,
			PaymentIntentID: intent.ID,
			OrderID:         orderID,
		}, nil
	})
}

// Confirm verifies the intent with the gateway, marks the order paid,
// synthesizes one confirmed booking per scheduled item and clears the
// cart. Everything after the gateway check is one transaction.
func (u *paymentUseCaseImpl) Confirm(ctx context.Context, actor Actor, paymentIntentID string) ([]*readmodel.BookingRM, error) {
	return db.RunInTx(ctx, u.pool, func(tx db.DBTX) ([]*readmodel.BookingRM, error) {
		return u.confirmInTx(ctx, tx, actor, paymentIntentID)
	})
}

func (u *paymentUseCaseImpl) confirmInTx(ctx context.Context, tx db.DBTX, actor Actor, paymentIntentID string) ([]*readmodel.BookingRM, error) {
	paymentRow, orderID, err := u.paymentRepo.FindByIntentID(ctx, tx, paymentIntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if actor.Role != user.RoleAdmin && paymentRow.CustomerID != actor.ID {
		return nil, ErrPaymentAccessDenied
	}
	if paymentRow.Status == "succeeded" {
		return nil, ErrPaymentAlreadyConfirmed
	}

	// Lock the order row so concurrent confirms of the same intent
	// serialize before any bookings are synthesized.
	order, err := u.orderRepo.FindOrderByID(ctx, tx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if order.Status == "paid" {
		return nil, ErrPaymentAlreadyConfirmed
	}

	intent, err := u.gateway.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}
	if intent.Status != "succeeded" {
		return nil, ErrPaymentNotSucceeded
	}

	if err := u.paymentRepo.UpdateStatus(ctx, tx, paymentIntentID, "succeeded"); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if err := u.orderRepo.MarkOrderPaid(ctx, tx, orderID); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	items, err := u.orderRepo.FindOrderItems(ctx, tx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	bookings := make([]*readmodel.BookingRM, 0, len(items))
	for _, item := range items {
		if item.BookingDate == nil || item.StartTime == nil || item.EndTime == nil {
			continue
		}

		entity, err := synthesizeBooking(paymentRow.CustomerID, item)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		rm, err := u.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrPartnerUnavailable
			}
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		bookings = append(bookings, rm)
	}

	if err := u.cartRepo.Clear(ctx, tx, paymentRow.CustomerID); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return bookings, nil
}

func (u *paymentUseCaseImpl) resolveSlot(ctx context.Context, offeringID uuid.UUID, start booking.TimeOfDay) (booking.TimeRange, error) {
	offering, err := u.catalog.FindOfferingByID(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.TimeRange{}, ErrOfferingNotFound
		}
		return booking.TimeRange{}, errs.Mark(err, ErrStoreFailure)
	}

	slot, err := booking.NewTimeRange(start, int(offering.DurationMin))
	if err != nil {
		return booking.TimeRange{}, errs.Mark(err, ErrInvalidSchedule)
	}
	return slot, nil
}

func synthesizeBooking(customerID uuid.UUID, item *readmodel.OrderItemRM) (*booking.Booking, error) {
	start, err := booking.ParseTimeOfDay(*item.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := booking.ParseTimeOfDay(*item.EndTime)
	if err != nil {
		return nil, err
	}
	return booking.NewConfirmedBooking(
		customerID, item.PartnerID, item.OfferingID, *item.BookingDate,
		booking.ReconstructTimeRange(start, end),
		item.PriceCents, item.Quantity,
	)
}
