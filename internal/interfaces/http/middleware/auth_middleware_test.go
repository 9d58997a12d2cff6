package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"care-connect.backend/pkg/jwt"
)

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer invalid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(uuid.New(), "u@careconnect.au", "WORKER")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expiredJWT := jwt.NewJWTService("secret", -1*time.Second, time.Hour)
	pair, err := expiredJWT.GenerateTokenPair(uuid.New(), "u@careconnect.au", "WORKER")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware(expiredJWT))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddleware_SetsContextValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := jwtService.GenerateTokenPair(userID, "u@careconnect.au", "COORDINATOR")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	r.GET("/me", func(c *gin.Context) {
		gotID, ok := GetUserID(c)
		require.True(t, ok)
		require.Equal(t, userID, gotID)

		email, ok := GetUserEmail(c)
		require.True(t, ok)
		require.Equal(t, "u@careconnect.au", email)

		role, ok := GetUserRole(c)
		require.True(t, ok)
		require.Equal(t, "COORDINATOR", role)

		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	newRouter := func(guard gin.HandlerFunc) *gin.Engine {
		r := gin.New()
		r.Use(AuthMiddleware(jwtService), guard)
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	do := func(r *gin.Engine, role string) *httptest.ResponseRecorder {
		pair, err := jwtService.GenerateTokenPair(uuid.New(), "u@careconnect.au", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("matching role passes", func(t *testing.T) {
		w := do(newRouter(RequireWorker()), "WORKER")
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		w := do(newRouter(RequireCoordinator()), "CLIENT")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("any of several roles", func(t *testing.T) {
		w := do(newRouter(RequireRole("CLIENT", "COORDINATOR")), "COORDINATOR")
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("no role in context", func(t *testing.T) {
		r := gin.New()
		r.Use(RequireClient())
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
