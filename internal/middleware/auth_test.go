package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"insdocs/internal/domain"
	"insdocs/internal/middleware"
	"insdocs/internal/service"
	"insdocs/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(authSvc service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(authSvc)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, err := middleware.GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "role": middleware.GetRole(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	userID := uuid.New()
	authSvc.On("ValidateAccessToken", "good-token").Return(&service.Claims{
		UserID: userID.String(),
		Email:  "user@test.com",
		Role:   string(domain.RoleMember),
	}, nil)

	r := protectedRouter(authSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(new(mocks.MockAuthService))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateAccessToken", "bad-token").Return(nil, domain.ErrUnauthorized)

	r := protectedRouter(authSvc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Denied(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateAccessToken", "member-token").Return(&service.Claims{
		UserID: uuid.New().String(),
		Role:   string(domain.RoleMember),
	}, nil)

	r := protectedRouter(authSvc, middleware.RequireRole(domain.RoleAdmin))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer member-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateAccessToken", "admin-token").Return(&service.Claims{
		UserID: uuid.New().String(),
		Role:   string(domain.RoleAdmin),
	}, nil)

	r := protectedRouter(authSvc, middleware.RequireRole(domain.RoleAdmin))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
