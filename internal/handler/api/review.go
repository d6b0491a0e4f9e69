package api

import (
	"errors"
	"net/http"

	reqdto "doorserve/internal/handler/dto/request"
	resdto "doorserve/internal/handler/dto/response"
	"doorserve/internal/handler/middleware"
	"doorserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// @Summary Create review
// @Description Review a completed booking; one review per booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reviewRM, err := h.reviewUseCase.Create(c.Request.Context(), usecase.CreateReviewParams{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrReviewNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the booking customer can leave a review",
			})
		case errors.Is(err, usecase.ErrReviewValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewRM(reviewRM))
}

// @Summary List partner reviews
// @Description List reviews left for a partner
// @Tags reviews
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /reviews/partner/{id} [get]
func (h *ReviewHandler) ListPartnerReviews(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid partner ID format",
		})
		return
	}

	reviews, err := h.reviewUseCase.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReviewResponse, len(reviews))
	for i, rm := range reviews {
		response[i] = resdto.FromReviewRM(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Partner rating stats
// @Description Average rating, review count and rating distribution for a partner
// @Tags reviews
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} resdto.RatingStatsResponse
// @Failure 400 {object} map[string]string
// @Router /reviews/partner/{id}/stats [get]
func (h *ReviewHandler) PartnerRatingStats(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid partner ID format",
		})
		return
	}

	stats, err := h.reviewUseCase.StatsByPartner(c.Request.Context(), partnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingStatsRM(stats))
}
