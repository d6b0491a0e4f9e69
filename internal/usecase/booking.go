package usecase

import (
	"context"
	"errors"
	"time"

	"doorserve/internal/domain/booking"
	"doorserve/internal/domain/user"
	"doorserve/internal/infra"
	"doorserve/internal/infra/db"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrOnlyCustomersBook   = errors.New("only customers can create bookings")
	ErrBookingAccessDenied = errors.New("no access to this booking")
	ErrPartnerUnavailable  = errors.New("partner is not available at the requested time")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidSchedule     = errors.New("invalid booking schedule")
	ErrDomainValidation    = errors.New("domain validation failed")
	ErrStoreFailure        = errors.New("booking store operation failed")
)

const txMaxRetries = 3

// Actor is the authenticated caller, as resolved by the auth middleware.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type CreateBookingParams struct {
	PartnerID   uuid.UUID
	ServiceID   uuid.UUID
	BookingDate time.Time
	StartTime   booking.TimeOfDay
	PriceCents  int64
	DurationMin int
}

type RescheduleParams struct {
	BookingDate time.Time
	StartTime   booking.TimeOfDay
	DurationMin int
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	// LockByID fetches the booking row FOR UPDATE; callers must hold a transaction.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByPartnerAndDate(ctx context.Context, tx db.DBTX, partnerID uuid.UUID, date time.Time, excludedStatus booking.Status) ([]*booking.Booking, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, status *booking.Status) ([]*readmodel.BookingListRM, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID, status *booking.Status) ([]*readmodel.BookingListRM, error)
	FindAll(ctx context.Context, status *booking.Status) ([]*readmodel.BookingListRM, error)
}

// UserDirectory resolves identities and roles; consumed read-only.
type UserDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

// OfferingCatalog resolves partner service listings; consumed read-only.
type OfferingCatalog interface {
	FindOfferingByID(ctx context.Context, id uuid.UUID) (*readmodel.OfferingRM, error)
}

type BookingUseCase interface {
	Create(ctx context.Context, params CreateBookingParams, actor Actor) (*readmodel.BookingRM, error)
	List(ctx context.Context, actor Actor, statusFilter *string) ([]*readmodel.BookingListRM, error)
	Get(ctx context.Context, id uuid.UUID, actor Actor) (*readmodel.BookingRM, error)
	Cancel(ctx context.Context, id uuid.UUID, actor Actor) (*readmodel.BookingRM, error)
	Complete(ctx context.Context, id uuid.UUID, actor Actor) (*readmodel.BookingRM, error)
	Reschedule(ctx context.Context, id uuid.UUID, params RescheduleParams, actor Actor) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	users       UserDirectory
	catalog     OfferingCatalog
	pool        *pgxpool.Pool
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	users UserDirectory,
	catalog OfferingCatalog,
	pool *pgxpool.Pool,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		users:       users,
		catalog:     catalog,
		pool:        pool,
	}
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, params CreateBookingParams, actor Actor) (*readmodel.BookingRM, error) {
	if actor.Role != user.RoleCustomer {
		return nil, ErrOnlyCustomersBook
	}

	partner, err := u.users.FindByID(ctx, params.PartnerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if partner.Role != user.RolePartner.String() {
		return nil, ErrPartnerNotFound
	}

	if _, err := u.catalog.FindOfferingByID(ctx, params.ServiceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	slot, err := booking.NewTimeRange(params.StartTime, params.DurationMin)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	entity, err := booking.NewBooking(actor.ID, params.PartnerID, params.ServiceID, params.BookingDate, slot, params.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Availability check and insert share one transaction; the
	// store-level exclusion constraint closes the remaining race.
	return db.RunInTxWithRetry(ctx, u.pool, txMaxRetries, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		if err := u.checkAvailability(ctx, tx, params.PartnerID, params.BookingDate, slot, uuid.Nil); err != nil {
			return nil, err
		}

		rm, err := u.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, ErrPartnerUnavailable
			}
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		return rm, nil
	})
}

func (u *bookingUseCaseImpl) List(ctx context.Context, actor Actor, statusFilter *string) ([]*readmodel.BookingListRM, error) {
	var status *booking.Status
	if statusFilter != nil {
		parsed, err := booking.NewStatus(*statusFilter)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidStatusFilter)
		}
		status = &parsed
	}

	var (
		rows []*readmodel.BookingListRM
		err  error
	)
	switch actor.Role {
	case user.RoleCustomer:
		rows, err = u.bookingRepo.FindByCustomer(ctx, actor.ID, status)
	case user.RolePartner:
		rows, err = u.bookingRepo.FindByPartner(ctx, actor.ID, status)
	case user.RoleAdmin:
		rows, err = u.bookingRepo.FindAll(ctx, status)
	default:
		return nil, ErrBookingAccessDenied
	}
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rows, nil
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, id uuid.UUID, actor Actor) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if !canAccessBooking(actor, rm.CustomerID, rm.PartnerID) {
		return nil, ErrBookingAccessDenied
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actor Actor) (*readmodel.BookingRM, error) {
	return db.RunInTx(ctx, u.pool, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		entity, err := u.lockBooking(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		if !canAccessBooking(actor, entity.CustomerID(), entity.PartnerID()) {
			return nil, ErrBookingAccessDenied
		}

		if err := entity.Cancel(); err != nil {
			return nil, errs.Mark(err, ErrInvalidTransition)
		}
		return u.persist(ctx, tx, entity)
	})
}

func (u *bookingUseCaseImpl) Complete(ctx context.Context, id uuid.UUID, actor Actor) (*readmodel.BookingRM, error) {
	return db.RunInTx(ctx, u.pool, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		entity, err := u.lockBooking(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		// Only the assigned partner or an admin may mark completion.
		if actor.Role != user.RoleAdmin && entity.PartnerID() != actor.ID {
			return nil, ErrBookingAccessDenied
		}

		if err := entity.Complete(); err != nil {
			return nil, errs.Mark(err, ErrInvalidTransition)
		}
		return u.persist(ctx, tx, entity)
	})
}

func (u *bookingUseCaseImpl) Reschedule(ctx context.Context, id uuid.UUID, params RescheduleParams, actor Actor) (*readmodel.BookingRM, error) {
	slot, err := booking.NewTimeRange(params.StartTime, params.DurationMin)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	return db.RunInTxWithRetry(ctx, u.pool, txMaxRetries, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		entity, err := u.lockBooking(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		if !canAccessBooking(actor, entity.CustomerID(), entity.PartnerID()) {
			return nil, ErrBookingAccessDenied
		}

		if entity.Status().IsTerminal() {
			return nil, errs.Mark(booking.ErrTerminalState, ErrInvalidTransition)
		}

		// The booking being moved must not conflict with itself.
		if err := u.checkAvailability(ctx, tx, entity.PartnerID(), params.BookingDate, slot, entity.ID()); err != nil {
			return nil, err
		}

		if err := entity.Reschedule(params.BookingDate, slot); err != nil {
			return nil, errs.Mark(err, ErrInvalidTransition)
		}
		return u.persist(ctx, tx, entity)
	})
}

func (u *bookingUseCaseImpl) checkAvailability(
	ctx context.Context,
	tx db.DBTX,
	partnerID uuid.UUID,
	date time.Time,
	slot booking.TimeRange,
	exclude uuid.UUID,
) error {
	existing, err := u.bookingRepo.FindByPartnerAndDate(ctx, tx, partnerID, date, booking.StatusCancelled)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if booking.ConflictsWith(existing, slot, exclude) {
		return ErrPartnerUnavailable
	}
	return nil
}

func (u *bookingUseCaseImpl) lockBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.bookingRepo.LockByID(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) persist(ctx context.Context, tx db.DBTX, entity *booking.Booking) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.Update(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrPartnerUnavailable
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}

func canAccessBooking(actor Actor, customerID, partnerID uuid.UUID) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleCustomer:
		return customerID == actor.ID
	case user.RolePartner:
		return partnerID == actor.ID
	default:
		return false
	}
}
