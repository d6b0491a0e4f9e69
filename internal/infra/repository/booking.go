package repository

import (
	"context"
	"errors"
	"time"

	"doorserve/internal/domain/booking"
	"doorserve/internal/infra"
	"doorserve/internal/infra/db"
	"doorserve/internal/usecase"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

var _ usecase.BookingRepository = (*BookingRepository)(nil)

const bookingRMQuery = `
		SELECT b.id, b.customer_id, c.first_name || ' ' || c.last_name AS customer_name,
		       b.partner_id, p.first_name || ' ' || p.last_name AS partner_name,
		       b.offering_id, o.title AS service_name,
		       b.booking_date, to_char(b.start_time, 'HH24:MI'), to_char(b.end_time, 'HH24:MI'),
		       b.status, b.price_cents, b.quantity, b.total_cents, b.created_at, b.updated_at
		FROM bookings b
		JOIN users c ON c.id = b.customer_id
		JOIN users p ON p.id = b.partner_id
		JOIN offerings o ON o.id = b.offering_id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error) {
	query := `
		INSERT INTO bookings (id, customer_id, partner_id, offering_id, booking_date,
		                      start_time, end_time, status, price_cents, quantity, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8, $9, $10, $11)
	`
	_, err := tx.Exec(ctx, query,
		b.ID(), b.CustomerID(), b.PartnerID(), b.OfferingID(), b.BookingDate(),
		b.Slot().Start().String(), b.Slot().End().String(), b.Status().String(),
		b.PriceCents(), b.Quantity(), b.TotalCents(),
	)
	if err != nil {
		return nil, wrapBookingWriteErr("failed to insert booking", err)
	}
	return r.findRM(ctx, tx, b.ID())
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error) {
	query := `
		UPDATE bookings
		SET booking_date = $2, start_time = $3::time, end_time = $4::time,
		    status = $5, updated_at = now()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query,
		b.ID(), b.BookingDate(), b.Slot().Start().String(), b.Slot().End().String(), b.Status().String(),
	)
	if err != nil {
		return nil, wrapBookingWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return r.findRM(ctx, tx, b.ID())
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	return r.findRM(ctx, r.pool, id)
}

func (r *BookingRepository) findRM(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := tx.QueryRow(ctx, bookingRMQuery+" WHERE b.id = $1", id)

	var rm readmodel.BookingRM
	var status string
	err := row.Scan(
		&rm.ID, &rm.CustomerID, &rm.CustomerName,
		&rm.PartnerID, &rm.PartnerName,
		&rm.OfferingID, &rm.ServiceName,
		&rm.BookingDate, &rm.StartTime, &rm.EndTime,
		&status, &rm.PriceCents, &rm.Quantity, &rm.TotalCents, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	rm.Status = status
	return &rm, nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	query := `
		SELECT id, customer_id, partner_id, offering_id, booking_date,
		       to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		       status, price_cents, quantity, total_cents, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`
	entity, err := scanBookingEntity(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return entity, nil
}

func (r *BookingRepository) FindByPartnerAndDate(
	ctx context.Context,
	tx db.DBTX,
	partnerID uuid.UUID,
	date time.Time,
	excludedStatus booking.Status,
) ([]*booking.Booking, error) {
	query := `
		SELECT id, customer_id, partner_id, offering_id, booking_date,
		       to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		       status, price_cents, quantity, total_cents, created_at, updated_at
		FROM bookings
		WHERE partner_id = $1 AND booking_date = $2 AND status <> $3
		ORDER BY start_time
	`
	rows, err := tx.Query(ctx, query, partnerID, date, excludedStatus.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings for partner", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		entity, err := scanBookingEntity(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *BookingRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, status *booking.Status) ([]*readmodel.BookingListRM, error) {
	return r.list(ctx, "b.customer_id = $1", customerID, status)
}

func (r *BookingRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID, status *booking.Status) ([]*readmodel.BookingListRM, error) {
	return r.list(ctx, "b.partner_id = $1", partnerID, status)
}

func (r *BookingRepository) FindAll(ctx context.Context, status *booking.Status) ([]*readmodel.BookingListRM, error) {
	query := `
		SELECT b.id, b.customer_id, c.first_name || ' ' || c.last_name,
		       b.partner_id, p.first_name || ' ' || p.last_name,
		       o.title, b.booking_date,
		       to_char(b.start_time, 'HH24:MI'), to_char(b.end_time, 'HH24:MI'),
		       b.status, b.total_cents, b.created_at
		FROM bookings b
		JOIN users c ON c.id = b.customer_id
		JOIN users p ON p.id = b.partner_id
		JOIN offerings o ON o.id = b.offering_id
		WHERE ($1::text IS NULL OR b.status = $1)
		ORDER BY b.booking_date DESC, b.start_time DESC
	`
	rows, err := r.pool.Query(ctx, query, statusArg(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return scanBookingList(rows)
}

func (r *BookingRepository) list(ctx context.Context, cond string, ownerID uuid.UUID, status *booking.Status) ([]*readmodel.BookingListRM, error) {
	query := `
		SELECT b.id, b.customer_id, c.first_name || ' ' || c.last_name,
		       b.partner_id, p.first_name || ' ' || p.last_name,
		       o.title, b.booking_date,
		       to_char(b.start_time, 'HH24:MI'), to_char(b.end_time, 'HH24:MI'),
		       b.status, b.total_cents, b.created_at
		FROM bookings b
		JOIN users c ON c.id = b.customer_id
		JOIN users p ON p.id = b.partner_id
		JOIN offerings o ON o.id = b.offering_id
		WHERE ` + cond + ` AND ($2::text IS NULL OR b.status = $2)
		ORDER BY b.booking_date DESC, b.start_time DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID, statusArg(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*readmodel.BookingListRM, error) {
	var result []*readmodel.BookingListRM
	for rows.Next() {
		var rm readmodel.BookingListRM
		err := rows.Scan(
			&rm.ID, &rm.CustomerID, &rm.CustomerName,
			&rm.PartnerID, &rm.PartnerName,
			&rm.ServiceName, &rm.BookingDate, &rm.StartTime, &rm.EndTime,
			&rm.Status, &rm.TotalCents, &rm.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func scanBookingEntity(row pgx.Row) (*booking.Booking, error) {
	var (
		id, customerID, partnerID, offeringID uuid.UUID
		bookingDate                           time.Time
		startStr, endStr, statusStr           string
		priceCents, totalCents                int64
		quantity                              int32
		createdAt, updatedAt                  time.Time
	)
	err := row.Scan(
		&id, &customerID, &partnerID, &offeringID, &bookingDate,
		&startStr, &endStr, &statusStr, &priceCents, &quantity, &totalCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	start, err := booking.ParseTimeOfDay(startStr)
	if err != nil {
		return nil, err
	}
	end, err := booking.ParseTimeOfDay(endStr)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		id, customerID, partnerID, offeringID, bookingDate,
		booking.ReconstructTimeRange(start, end),
		status, priceCents, quantity, totalCents, createdAt, updatedAt,
	), nil
}

func statusArg(status *booking.Status) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}

// wrapBookingWriteErr maps overlap-exclusion violations to a conflict so the
// caller can surface them as an availability failure.
func wrapBookingWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01":
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
