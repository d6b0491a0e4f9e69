package repository

import (
	"context"
	"errors"

	"doorserve/internal/infra"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) FindAllServices(ctx context.Context, category *string) ([]*readmodel.CatalogServiceRM, error) {
	query := `
		SELECT id, name, category, description, created_at
		FROM catalog_services
		WHERE ($1::text IS NULL OR category = $1)
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog services", err)
	}
	defer rows.Close()

	var result []*readmodel.CatalogServiceRM
	for rows.Next() {
		var rm readmodel.CatalogServiceRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Category, &rm.Description, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog service", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate catalog services", err)
	}
	return result, nil
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.CatalogServiceRM, error) {
	query := `
		SELECT id, name, category, description, created_at
		FROM catalog_services
		WHERE id = $1
	`
	var rm readmodel.CatalogServiceRM
	err := r.pool.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Name, &rm.Category, &rm.Description, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("catalog service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog service", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) FindOfferingsByService(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.OfferingRM, error) {
	query := offeringRMQuery + `
		WHERE o.catalog_id = $1 AND o.available
		ORDER BY o.price_cents
	`
	rows, err := r.pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	var result []*readmodel.OfferingRM
	for rows.Next() {
		rm, err := scanOffering(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offerings", err)
	}
	return result, nil
}

func (r *CatalogRepository) FindOfferingByID(ctx context.Context, id uuid.UUID) (*readmodel.OfferingRM, error) {
	rm, err := scanOffering(r.pool.QueryRow(ctx, offeringRMQuery+" WHERE o.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offering", err)
	}
	return rm, nil
}

const offeringRMQuery = `
		SELECT o.id, o.partner_id, p.first_name || ' ' || p.last_name AS partner_name,
		       o.catalog_id, o.title, o.price_cents, o.duration_min, o.description, o.available
		FROM offerings o
		JOIN users p ON p.id = o.partner_id`

func scanOffering(row pgx.Row) (*readmodel.OfferingRM, error) {
	var rm readmodel.OfferingRM
	err := row.Scan(
		&rm.ID, &rm.PartnerID, &rm.PartnerName, &rm.CatalogID,
		&rm.Title, &rm.PriceCents, &rm.DurationMin, &rm.Description, &rm.Available,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
