package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeProbe bool

func (f fakeProbe) IsAlive(context.Context) bool { return bool(f) }

type fakeCounter int64

func (f fakeCounter) Count(context.Context) (int64, error) { return int64(f), nil }

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/status", h.Status)
	router.GET("/stats", h.Stats)
	return router
}

func TestStatus(t *testing.T) {
	router := newRouter(NewHandler(fakeProbe(true), fakeProbe(false), fakeCounter(0), fakeCounter(0)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"redis":true,"db":false}`, rec.Body.String())
}

func TestStats(t *testing.T) {
	router := newRouter(NewHandler(fakeProbe(true), fakeProbe(true), fakeCounter(12), fakeCounter(1280)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"users":12,"files":1280}`, rec.Body.String())
}
