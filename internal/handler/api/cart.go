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

type CartHandler struct {
	cartUseCase usecase.CartUseCase
}

func NewCartHandler(cartUseCase usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

// @Summary Get cart
// @Description List the current customer's cart items
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CartItemResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.cartUseCase.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CartItemResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromCartItemRM(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Add cart item
// @Description Add an offering to the cart; adding the same offering bumps quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 201 {object} resdto.CartItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.cartUseCase.Add(c.Request.Context(), userID, req.OfferingID, req.Quantity)
	if err != nil {
		h.handleCartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCartItemRM(item))
}

// @Summary Update cart item
// @Description Change the quantity of a cart item
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity; zero or negative removes the item"
// @Success 200 {object} resdto.CartItemResponse
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID format",
		})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.cartUseCase.UpdateQuantity(c.Request.Context(), userID, itemID, *req.Quantity)
	if err != nil {
		h.handleCartError(c, err)
		return
	}
	if item == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartItemRM(item))
}

// @Summary Remove cart item
// @Description Remove an item from the cart
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID format",
		})
		return
	}

	if err := h.cartUseCase.Remove(c.Request.Context(), userID, itemID); err != nil {
		h.handleCartError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) handleCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart item not found",
		})
	case errors.Is(err, usecase.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Offering not found",
		})
	case errors.Is(err, usecase.ErrOfferingUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Offering is not available",
		})
	case errors.Is(err, usecase.ErrInvalidCartQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be positive",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
