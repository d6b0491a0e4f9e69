//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"doorserve/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("builds a valid review", func(t *testing.T) {
		r, err := review.NewReview(uuid.New(), uuid.New(), uuid.New(), 5, "  great service  ", now)
		require.NoError(t, err)
		assert.Equal(t, 5, r.Rating().Value())
		assert.Equal(t, "great service", r.Comment().String())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("rejects out of range ratings", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6} {
			_, err := review.NewReview(uuid.New(), uuid.New(), uuid.New(), rating, "ok", now)
			assert.ErrorIs(t, err, review.ErrInvalidRating)
		}
	})

	t.Run("rejects empty comment", func(t *testing.T) {
		_, err := review.NewReview(uuid.New(), uuid.New(), uuid.New(), 4, "   ", now)
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})

	t.Run("rejects oversized comment", func(t *testing.T) {
		_, err := review.NewReview(uuid.New(), uuid.New(), uuid.New(), 4, strings.Repeat("a", review.MaxCommentLength+1), now)
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}
