package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrEmptyComment          = errors.New("comment cannot be empty")
	ErrCommentTooLong        = errors.New("comment exceeds maximum length")
	ErrBookingNotReviewable  = errors.New("only completed bookings can be reviewed")
	ErrReviewAlreadyExists   = errors.New("review already exists for this booking")
)

type Review struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	customerID uuid.UUID
	partnerID  uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(bookingID, customerID, partnerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		bookingID:  bookingID,
		customerID: customerID,
		partnerID:  partnerID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) PartnerID() uuid.UUID  { return r.partnerID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
