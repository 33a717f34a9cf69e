package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/memome/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Bootstrap handles common server setup shared by every route
type Bootstrap struct {
	cfg      *config.Config
	registry *prometheus.Registry
}

// NewBootstrap creates a new bootstrap instance with its own metrics registry
func NewBootstrap(cfg *config.Config) *Bootstrap {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Bootstrap{
		cfg:      cfg,
		registry: registry,
	}
}

// Registry returns the registry served on /metrics
func (b *Bootstrap) Registry() *prometheus.Registry {
	return b.registry
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Metrics(middleware.NewHTTPMetrics(b.registry)))
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
