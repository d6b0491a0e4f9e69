package usecase

import (
	"context"
	"errors"

	"doorserve/internal/domain/booking"
	"doorserve/internal/domain/review"
	"doorserve/internal/domain/user"
	"doorserve/internal/infra"
	"doorserve/internal/pkg/clock"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrReviewNotAllowed = errors.New("only the booking customer can leave a review")
	ErrReviewValidation = errors.New("review validation failed")
)

type CreateReviewParams struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) error
	FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]*readmodel.ReviewRM, error)
	RatingStats(ctx context.Context, partnerID uuid.UUID) (*readmodel.RatingStatsRM, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type ReviewUseCase interface {
	Create(ctx context.Context, params CreateReviewParams, actor Actor) (*readmodel.ReviewRM, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*readmodel.ReviewRM, error)
	StatsByPartner(ctx context.Context, partnerID uuid.UUID) (*readmodel.RatingStatsRM, error)
}

type reviewUseCaseImpl struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	users       UserDirectory
	clock       clock.Clock
}

func NewReviewUseCase(reviewRepo ReviewRepository, bookingRepo BookingRepository, users UserDirectory, clock clock.Clock) ReviewUseCase {
	return &reviewUseCaseImpl{reviewRepo: reviewRepo, bookingRepo: bookingRepo, users: users, clock: clock}
}

func (u *reviewUseCaseImpl) Create(ctx context.Context, params CreateReviewParams, actor Actor) (*readmodel.ReviewRM, error) {
	if actor.Role != user.RoleCustomer {
		return nil, ErrReviewNotAllowed
	}

	bookingRM, err := u.bookingRepo.FindByID(ctx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if bookingRM.CustomerID != actor.ID {
		return nil, ErrReviewNotAllowed
	}
	if bookingRM.Status != booking.StatusCompleted.String() {
		return nil, errs.Mark(review.ErrBookingNotReviewable, ErrReviewValidation)
	}

	exists, err := u.reviewRepo.ExistsForBooking(ctx, params.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if exists {
		return nil, errs.Mark(review.ErrReviewAlreadyExists, ErrReviewValidation)
	}

	entity, err := review.NewReview(params.BookingID, actor.ID, bookingRM.PartnerID, params.Rating, params.Comment, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrReviewValidation)
	}

	if err := u.reviewRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(review.ErrReviewAlreadyExists, ErrReviewValidation)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	author, err := u.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &readmodel.ReviewRM{
		ID:           entity.ID(),
		BookingID:    entity.BookingID(),
		CustomerID:   entity.CustomerID(),
		CustomerName: author.DisplayName(),
		PartnerID:    entity.PartnerID(),
		Rating:       int32(entity.Rating().Value()),
		Comment:      entity.Comment().String(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (u *reviewUseCaseImpl) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]*readmodel.ReviewRM, error) {
	reviews, err := u.reviewRepo.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return reviews, nil
}

func (u *reviewUseCaseImpl) StatsByPartner(ctx context.Context, partnerID uuid.UUID) (*readmodel.RatingStatsRM, error) {
	stats, err := u.reviewRepo.RatingStats(ctx, partnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return stats, nil
}
