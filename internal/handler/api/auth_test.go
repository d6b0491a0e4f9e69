//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"doorserve/internal/handler/api"
	resdto "doorserve/internal/handler/dto/response"
	"doorserve/internal/pkg/jwt"
	"doorserve/internal/usecase"
	"doorserve/internal/usecase/readmodel"
	"doorserve/tests/common/httptest"
	usecasemock "doorserve/tests/mock/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, jwt.NewService("test-secret", time.Hour))
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authMiddleware, s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) userRM() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        s.userID,
		Email:     "customer@example.com",
		FirstName: "Casey",
		LastName:  "Customer",
		Role:      "customer",
		IsActive:  true,
	}
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := map[string]any{
		"email":      "customer@example.com",
		"password":   "password123",
		"first_name": "Casey",
		"last_name":  "Customer",
		"role":       "customer",
	}

	s.Run("success: returns 201 with token and sets cookie", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&usecase.LoginResult{Token: "signed-token", User: s.userRM()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("signed-token", resp.AccessToken)
		s.Equal(s.userID, resp.User.ID)
		s.NotEmpty(rec.Header().Get("Set-Cookie"))
	})

	s.Run("error: returns 400 for missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "x@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: returns 409 for duplicate email", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrEmailAlreadyTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: returns 400 for invalid registration data", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrUserValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid registration data")
	})
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := map[string]any{
		"email":    "customer@example.com",
		"password": "password123",
	}

	s.Run("success: returns 200 with token", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "customer@example.com", "password123").
			Return(&usecase.LoginResult{Token: "signed-token", User: s.userRM()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("signed-token", resp.AccessToken)
	})

	s.Run("error: returns 401 for bad credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrAuthenticationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: returns 403 for deactivated account", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrAccountDeactivated).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "inactive")
	})

	s.Run("error: returns 500 for unexpected failure", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestLogout
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.NotEmpty(rec.Header().Get("Set-Cookie"))
	})

	s.Run("error: returns 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user", func() {
		s.mockUseCase.EXPECT().Me(gomock.Any(), s.userID).
			Return(s.userRM(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(s.userID, resp.ID)
		s.Equal("customer", resp.Role)
	})

	s.Run("error: returns 404 when the account vanished", func() {
		s.mockUseCase.EXPECT().Me(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
