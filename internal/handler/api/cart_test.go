//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"doorserve/internal/domain/user"
	"doorserve/internal/handler/api"
	resdto "doorserve/internal/handler/dto/response"
	"doorserve/internal/usecase"
	"doorserve/internal/usecase/readmodel"
	"doorserve/tests/common/httptest"
	usecasemock "doorserve/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockCartUseCase
	handler     *api.CartHandler
	actorID     uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockCartUseCase(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockUseCase)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.GET("/cart", authMiddleware, s.handler.GetCart)
	s.router.POST("/cart/items", authMiddleware, s.handler.AddItem)
	s.router.PUT("/cart/items/:id", authMiddleware, s.handler.UpdateItem)
	s.router.DELETE("/cart/items/:id", authMiddleware, s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartItemRM(quantity int32) *readmodel.CartItemRM {
	return &readmodel.CartItemRM{
		ID:           uuid.New(),
		OfferingID:   uuid.New(),
		ServiceTitle: "Deep Cleaning",
		PartnerID:    uuid.New(),
		PartnerName:  "Sparkle Co",
		Quantity:     quantity,
		PriceCents:   8500,
		CreatedAt:    time.Now(),
	}
}

func (s *CartHandlerTestSuite) TestUpdateItem() {
	itemID := uuid.New()
	url := "/cart/items/" + itemID.String()

	s.Run("success: returns 200 with the updated item", func() {
		rm := s.cartItemRM(3)
		rm.ID = itemID
		s.mockUseCase.EXPECT().
			UpdateQuantity(gomock.Any(), s.actorID, itemID, int32(3)).
			Return(rm, nil).Times(1)

		body := map[string]any{"quantity": 3}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		var resp resdto.CartItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(itemID, resp.ID)
		s.Equal(int32(3), resp.Quantity)
		s.Equal(int64(25500), resp.SubtotalCents)
	})

	s.Run("success: zero quantity removes the item and returns 204", func() {
		s.mockUseCase.EXPECT().
			UpdateQuantity(gomock.Any(), s.actorID, itemID, int32(0)).
			Return(nil, nil).Times(1)

		body := map[string]any{"quantity": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: negative quantity removes the item and returns 204", func() {
		s.mockUseCase.EXPECT().
			UpdateQuantity(gomock.Any(), s.actorID, itemID, int32(-1)).
			Return(nil, nil).Times(1)

		body := map[string]any{"quantity": -1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: returns 400 when the body has no quantity", func() {
		body := map[string]any{}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: returns 404 for an unknown item", func() {
		s.mockUseCase.EXPECT().
			UpdateQuantity(gomock.Any(), s.actorID, itemID, int32(0)).
			Return(nil, usecase.ErrCartItemNotFound).Times(1)

		body := map[string]any{"quantity": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})

	s.Run("error: returns 400 for a malformed item id", func() {
		body := map[string]any{"quantity": 1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/not-a-uuid", body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart item ID format")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	offeringID := uuid.New()

	s.Run("success: returns 201 with the new item", func() {
		rm := s.cartItemRM(1)
		rm.OfferingID = offeringID
		s.mockUseCase.EXPECT().
			Add(gomock.Any(), s.actorID, offeringID, int32(1)).
			Return(rm, nil).Times(1)

		body := map[string]any{"offering_id": offeringID, "quantity": 1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.CartItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(offeringID, resp.OfferingID)
	})

	s.Run("error: returns 400 for zero quantity", func() {
		body := map[string]any{"offering_id": offeringID, "quantity": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: returns 404 for an unknown offering", func() {
		s.mockUseCase.EXPECT().
			Add(gomock.Any(), s.actorID, offeringID, int32(1)).
			Return(nil, usecase.ErrOfferingNotFound).Times(1)

		body := map[string]any{"offering_id": offeringID, "quantity": 1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offering not found")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	itemID := uuid.New()
	url := "/cart/items/" + itemID.String()

	s.Run("success: returns 204", func() {
		s.mockUseCase.EXPECT().
			Remove(gomock.Any(), s.actorID, itemID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: returns 404 for an unknown item", func() {
		s.mockUseCase.EXPECT().
			Remove(gomock.Any(), s.actorID, itemID).
			Return(usecase.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}
