package api

import (
	"errors"
	"net/http"

	resdto "doorserve/internal/handler/dto/response"
	"doorserve/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List catalog services
// @Description List catalog services, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.CatalogServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	services, err := h.catalogUseCase.ListServices(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CatalogServiceResponse, len(services))
	for i, rm := range services {
		response[i] = resdto.FromCatalogServiceRM(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get catalog service
// @Description Get a catalog service by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.CatalogServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	service, err := h.catalogUseCase.GetService(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogServiceRM(service))
}

// @Summary List offerings
// @Description List available partner offerings for a catalog service
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {array} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/offerings [get]
func (h *CatalogHandler) ListOfferings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	offerings, err := h.catalogUseCase.ListOfferings(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}

	response := make([]*resdto.OfferingResponse, len(offerings))
	for i, rm := range offerings {
		response[i] = resdto.FromOfferingRM(rm)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get offering
// @Description Get a partner offering by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id} [get]
func (h *CatalogHandler) GetOffering(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offering ID format",
		})
		return
	}

	offering, err := h.catalogUseCase.GetOffering(c.Request.Context(), id)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferingRM(offering))
}

func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, usecase.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Offering not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
