package repository

import (
	"context"
	"errors"

	"doorserve/internal/infra"
	"doorserve/internal/infra/db"
	"doorserve/internal/usecase"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// CreateOrder inserts the order and its items in one transaction and
// returns the order id.
func (r *OrderRepository) CreateOrder(ctx context.Context, tx db.DBTX, customerID uuid.UUID, totalCents int64, items []usecase.NewOrderItem) (uuid.UUID, error) {
	orderID := uuid.New()
	query := `
		INSERT INTO orders (id, customer_id, total_cents, status)
		VALUES ($1, $2, $3, 'pending')
	`
	if _, err := tx.Exec(ctx, query, orderID, customerID, totalCents); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, offering_id, partner_id, quantity, price_cents,
		                         booking_date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::time, $9::time)
	`
	for _, item := range items {
		_, err := tx.Exec(ctx, itemQuery,
			uuid.New(), orderID, item.OfferingID, item.PartnerID, item.Quantity, item.PriceCents,
			item.BookingDate, item.StartTime, item.EndTime,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return orderID, nil
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*readmodel.OrderRM, error) {
	query := `
		SELECT id, customer_id, total_cents, status, created_at
		FROM orders
		WHERE id = $1
		FOR UPDATE
	`
	var rm readmodel.OrderRM
	err := tx.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.CustomerID, &rm.TotalCents, &rm.Status, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return &rm, nil
}

func (r *OrderRepository) FindOrderItems(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]*readmodel.OrderItemRM, error) {
	query := `
		SELECT id, order_id, offering_id, partner_id, quantity, price_cents,
		       booking_date, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM order_items
		WHERE order_id = $1
	`
	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var result []*readmodel.OrderItemRM
	for rows.Next() {
		var rm readmodel.OrderItemRM
		err := rows.Scan(
			&rm.ID, &rm.OrderID, &rm.OfferingID, &rm.PartnerID, &rm.Quantity, &rm.PriceCents,
			&rm.BookingDate, &rm.StartTime, &rm.EndTime,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return result, nil
}

func (r *OrderRepository) MarkOrderPaid(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, "UPDATE orders SET status = 'paid', updated_at = now() WHERE id = $1", id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *readmodel.PaymentRM, orderID uuid.UUID) error {
	query := `
		INSERT INTO payments (id, order_id, customer_id, payment_intent_id, amount_cents, currency, status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := tx.Exec(ctx, query,
		p.ID, orderID, p.CustomerID, p.PaymentIntentID, p.AmountCents, p.Currency, p.Status, p.PaymentMethod,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, paymentIntentID, status string) error {
	query := `
		UPDATE payments
		SET status = $2, updated_at = now()
		WHERE payment_intent_id = $1
	`
	tag, err := tx.Exec(ctx, query, paymentIntentID, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByIntentID(ctx context.Context, tx db.DBTX, paymentIntentID string) (*readmodel.PaymentRM, uuid.UUID, error) {
	query := `
		SELECT id, order_id, customer_id, payment_intent_id, amount_cents, currency, status, payment_method
		FROM payments
		WHERE payment_intent_id = $1
		FOR UPDATE
	`
	var (
		rm      readmodel.PaymentRM
		orderID uuid.UUID
	)
	err := tx.QueryRow(ctx, query, paymentIntentID).Scan(
		&rm.ID, &orderID, &rm.CustomerID, &rm.PaymentIntentID,
		&rm.AmountCents, &rm.Currency, &rm.Status, &rm.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, uuid.Nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return &rm, orderID, nil
}
