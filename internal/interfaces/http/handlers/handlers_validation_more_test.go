package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"care-connect.backend/internal/interfaces/http/middleware"
)

func TestAccountHandler_RequiresContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AccountHandler{}
	r := gin.New()
	r.POST("/accounts", h.LinkAccount)
	r.GET("/accounts", h.ListAccounts)
	r.DELETE("/accounts/:id", h.UnlinkAccount)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/accounts"},
		{http.MethodGet, "/accounts"},
		{http.MethodDelete, "/accounts/" + uuid.NewString()},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAccountHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AccountHandler{}
	withUser := func(fn gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.UserIDKey, uuid.New())
			fn(c)
		}
	}
	r := gin.New()
	r.POST("/accounts", withUser(h.LinkAccount))
	r.DELETE("/accounts/:id", withUser(h.UnlinkAccount))

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"type":"oauth"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/accounts/nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid account ID")
}

func TestProfileHandler_RequiresContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ProfileHandler{}
	r := gin.New()
	r.GET("/profiles/client", h.GetClientProfile)
	r.PUT("/profiles/client", h.UpdateClientProfile)
	r.GET("/profiles/coordinator", h.GetCoordinatorProfile)
	r.PUT("/profiles/coordinator", h.UpdateCoordinatorProfile)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/profiles/client"},
		{http.MethodPut, "/profiles/client"},
		{http.MethodGet, "/profiles/coordinator"},
		{http.MethodPut, "/profiles/coordinator"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProfileHandler_BadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ProfileHandler{}
	r := gin.New()
	r.PUT("/profiles/client", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New())
		h.UpdateClientProfile(c)
	})

	req := httptest.NewRequest(http.MethodPut, "/profiles/client", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_RequiresContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AdminHandler{}
	r := gin.New()
	r.PUT("/admin/users/:id/status", h.ChangeUserStatus)
	r.PUT("/admin/users/:id/role", h.ChangeUserRole)

	id := uuid.NewString()
	for _, path := range []string{
		"/admin/users/" + id + "/status",
		"/admin/users/" + id + "/role",
	} {
		req := httptest.NewRequest(http.MethodPut, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AdminHandler{}
	withUser := func(fn gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.UserIDKey, uuid.New())
			fn(c)
		}
	}
	r := gin.New()
	r.PUT("/admin/users/:id/status", withUser(h.ChangeUserStatus))
	r.PUT("/admin/users/:id/role", withUser(h.ChangeUserRole))

	t.Run("bad user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/users/nope/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Invalid user ID")
	})

	t.Run("status required", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/users/"+uuid.NewString()+"/status", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("role required", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/admin/users/"+uuid.NewString()+"/role", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminHandler_ListAuditLogs_BadFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AdminHandler{}
	r := gin.New()
	r.GET("/admin/audit-logs", h.ListAuditLogs)

	for _, q := range []string{
		"?userId=not-a-uuid",
		"?from=not-a-time",
		"?to=2026",
	} {
		req := httptest.NewRequest(http.MethodGet, "/admin/audit-logs"+q, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
