package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"git.thinkinpower.net/cardkit/data"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Log(), Recovery())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(data.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", id, err)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(data.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, req)

	if got := w.Header().Get(data.RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
}

func TestRecovery(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}
