package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tourism-reservation/internal/handler"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	up := handler.PingFunc(func(context.Context) error { return nil })
	down := handler.PingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") })

	t.Run("Success", func(t *testing.T) {
		router, _ := newTestRouter()
		handler.NewHealthHandler(map[string]handler.Pinger{"postgres": up, "redis": up}).RegisterRoutes(&router.RouterGroup)

		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"checks": {"postgres": "up", "redis": "up"}}`, string(decode(t, w).Data))
	})

	t.Run("Failed - redis down", func(t *testing.T) {
		router, _ := newTestRouter()
		handler.NewHealthHandler(map[string]handler.Pinger{"postgres": up, "redis": down}).RegisterRoutes(&router.RouterGroup)

		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode(t, w)
		assert.Equal(t, "error", body.Status)
		assert.JSONEq(t, `{"checks": {"postgres": "up", "redis": "down"}}`, string(body.Data))
	})
}
