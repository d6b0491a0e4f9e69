package repository

import (
	"context"
	"errors"

	"doorserve/internal/domain/review"
	"doorserve/internal/infra"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	query := `
		INSERT INTO reviews (id, booking_id, customer_id, partner_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		rev.ID(), rev.BookingID(), rev.CustomerID(), rev.PartnerID(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(), rev.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr("review already exists for booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]*readmodel.ReviewRM, error) {
	query := `
		SELECT r.id, r.booking_id, r.customer_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       r.partner_id, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users c ON c.id = r.customer_id
		WHERE r.partner_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*readmodel.ReviewRM
	for rows.Next() {
		var rm readmodel.ReviewRM
		err := rows.Scan(
			&rm.ID, &rm.BookingID, &rm.CustomerID, &rm.CustomerName,
			&rm.PartnerID, &rm.Rating, &rm.Comment, &rm.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return result, nil
}

// RatingStats aggregates in the database; the distribution covers all
// five buckets even when empty.
func (r *ReviewRepository) RatingStats(ctx context.Context, partnerID uuid.UUID) (*readmodel.RatingStatsRM, error) {
	query := `
		SELECT rating, count(*)
		FROM reviews
		WHERE partner_id = $1
		GROUP BY rating
	`
	rows, err := r.pool.Query(ctx, query, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate ratings", err)
	}
	defer rows.Close()

	stats := &readmodel.RatingStatsRM{Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	var sum int64
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating bucket", err)
		}
		stats.Distribution[rating] = count
		stats.TotalReviews += count
		sum += int64(rating) * count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rating buckets", err)
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats, nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)", bookingID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
