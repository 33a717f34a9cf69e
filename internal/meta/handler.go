package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// Handler handles meta endpoints
type Handler struct {
	cfg *config.Config
	db  *database.DB
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
		"driver":      h.cfg.Database.Driver,
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		logger.FromContext(c.Request.Context()).Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"error":  err.Error(),
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
