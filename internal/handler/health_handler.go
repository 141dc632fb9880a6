package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose reachability the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	deps map[string]Pinger
}

func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

func (h *HealthHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("health", h.Health)
}

// Health answers 200 when every dependency responds and 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	healthy := true
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = "down"
			healthy = false
			continue
		}
		checks[name] = "up"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  statusError,
			"message": "Service unavailable",
			"data":    gin.H{"checks": checks},
		})
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"checks": checks})
}
