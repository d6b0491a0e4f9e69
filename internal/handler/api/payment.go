package api

import (
	"errors"
	"net/http"

	reqdto "doorserve/internal/handler/dto/request"
	resdto "doorserve/internal/handler/dto/response"
	"doorserve/internal/handler/middleware"
	"doorserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Create payment intent
// @Description Create an order from the cart and a payment intent for it
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Optional per-offering schedules"
// @Success 201 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	intent, err := h.paymentUseCase.CreateIntent(c.Request.Context(), actor, params)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentIntentRM(intent))
}

// @Summary Confirm payment
// @Description Verify the payment intent, mark the order paid and synthesize confirmed bookings
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmPaymentRequest true "Payment intent to confirm"
// @Success 200 {object} resdto.ConfirmPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookings, err := h.paymentUseCase.Confirm(c.Request.Context(), actor, req.PaymentIntentID)
	if err != nil {
		h.handlePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmedBookings(bookings))
}

func (h *PaymentHandler) handlePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, usecase.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Payment not found",
		})
	case errors.Is(err, usecase.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Offering not found",
		})
	case errors.Is(err, usecase.ErrPaymentAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, usecase.ErrPaymentNotSucceeded):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Payment has not succeeded",
		})
	case errors.Is(err, usecase.ErrPaymentAlreadyConfirmed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment already confirmed",
		})
	case errors.Is(err, usecase.ErrPartnerUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Partner is not available at the requested time",
		})
	case errors.Is(err, usecase.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking schedule",
		})
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment gateway request failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
