package repository

import (
	"context"
	"errors"

	"doorserve/internal/infra"
	"doorserve/internal/infra/db"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

const cartItemQuery = `
		SELECT ci.id, ci.offering_id, o.title, o.partner_id,
		       p.first_name || ' ' || p.last_name AS partner_name,
		       ci.quantity, o.price_cents, ci.created_at
		FROM cart_items ci
		JOIN offerings o ON o.id = ci.offering_id
		JOIN users p ON p.id = o.partner_id`

func (r *CartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.CartItemRM, error) {
	rows, err := r.pool.Query(ctx, cartItemQuery+" WHERE ci.customer_id = $1 ORDER BY ci.created_at", customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	var result []*readmodel.CartItemRM
	for rows.Next() {
		var rm readmodel.CartItemRM
		err := rows.Scan(
			&rm.ID, &rm.OfferingID, &rm.ServiceTitle, &rm.PartnerID, &rm.PartnerName,
			&rm.Quantity, &rm.PriceCents, &rm.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart items", err)
	}
	return result, nil
}

// AddItem upserts on (customer_id, offering_id); adding an offering
// already in the cart bumps its quantity instead.
func (r *CartRepository) AddItem(ctx context.Context, customerID, offeringID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error) {
	query := `
		INSERT INTO cart_items (id, customer_id, offering_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (customer_id, offering_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id
	`
	var itemID uuid.UUID
	err := r.pool.QueryRow(ctx, query, uuid.New(), customerID, offeringID, quantity).Scan(&itemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to add cart item", err)
	}
	return r.findItem(ctx, itemID)
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = now()
		WHERE id = $1 AND customer_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, itemID, customerID, quantity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("cart item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return r.findItem(ctx, itemID)
}

func (r *CartRepository) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cart_items WHERE id = $1 AND customer_id = $2", itemID, customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, tx db.DBTX, customerID uuid.UUID) error {
	if _, err := tx.Exec(ctx, "DELETE FROM cart_items WHERE customer_id = $1", customerID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

func (r *CartRepository) findItem(ctx context.Context, itemID uuid.UUID) (*readmodel.CartItemRM, error) {
	var rm readmodel.CartItemRM
	err := r.pool.QueryRow(ctx, cartItemQuery+" WHERE ci.id = $1", itemID).Scan(
		&rm.ID, &rm.OfferingID, &rm.ServiceTitle, &rm.PartnerID, &rm.PartnerName,
		&rm.Quantity, &rm.PriceCents, &rm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart item", err)
	}
	return &rm, nil
}
