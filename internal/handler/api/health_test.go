//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"plateshare-server/internal/handler/api"
	"plateshare-server/internal/handler/httperr"
	"plateshare-server/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHealthRouter(p api.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := api.NewHealthHandler(p)
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	return r
}

func TestHealthHandler(t *testing.T) {
	t.Run("root liveness text", func(t *testing.T) {
		r := newHealthRouter(pingerFunc(func(context.Context) error { return nil }))
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "PlateShare Server Is Running", rec.Body.String())
	})

	t.Run("healthy store", func(t *testing.T) {
		r := newHealthRouter(pingerFunc(func(context.Context) error { return nil }))
		var body map[string]string
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, ""), http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("store down", func(t *testing.T) {
		r := newHealthRouter(pingerFunc(func(context.Context) error { return errors.New("connection refused") }))
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, httperr.CodeInternal)
	})
}
