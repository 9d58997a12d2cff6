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

func TestWorkerHandler_RequiresContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WorkerHandler{}
	r := gin.New()
	r.GET("/workers/me", h.GetProfile)
	r.PUT("/workers/me", h.UpdateProfile)
	r.GET("/workers/me/requirements", h.ListRequirements)
	r.POST("/workers/me/requirements/:id/document", h.SubmitDocument)
	r.POST("/workers/me/submit", h.SubmitForReview)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/workers/me"},
		{http.MethodPut, "/workers/me"},
		{http.MethodGet, "/workers/me/requirements"},
		{http.MethodPost, "/workers/me/requirements/" + uuid.NewString() + "/document"},
		{http.MethodPost, "/workers/me/submit"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestWorkerHandler_SubmitDocument_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WorkerHandler{}
	r := gin.New()
	r.POST("/workers/me/requirements/:id/document", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New())
		h.SubmitDocument(c)
	})

	t.Run("bad requirement id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/workers/me/requirements/nope/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Invalid requirement ID")
	})

	t.Run("document url must be a url", func(t *testing.T) {
		body := `{"documentUrl":"not a url"}`
		req := httptest.NewRequest(http.MethodPost, "/workers/me/requirements/"+uuid.NewString()+"/document", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWorkerHandler_UpdateProfile_BadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WorkerHandler{}
	r := gin.New()
	r.PUT("/workers/me", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New())
		h.UpdateProfile(c)
	})

	req := httptest.NewRequest(http.MethodPut, "/workers/me", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
