package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/SscSPs/fx_rates_service/cmd/docs"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_service/internal/dto"
	"github.com/SscSPs/fx_rates_service/internal/middleware"
	"github.com/SscSPs/fx_rates_service/internal/platform/config"
	"github.com/SscSPs/fx_rates_service/internal/platform/metrics"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with global middleware and all routes.
// m may be nil, in which case no metrics are collected or exposed.
func NewRouter(cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger, m *metrics.Metrics) (*gin.Engine, error) {
	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))
	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	RegisterRoutes(r, cfg, services, m)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
) {
	registerHealthRoutes(r, services.Currency)
	registerExchangeRateRoutes(r, services.ExchangeRate)
	registerCurrencyRoutes(r, services.Currency)

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	setupSwaggerRoutes(r, cfg)

	// Must come last: it owns every path no API route matched.
	setupStaticRoutes(r, cfg.StaticDir)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if !cfg.EnableSwagger {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupStaticRoutes serves the frontend assets from dir for any GET or HEAD
// request that did not match an API route.
func setupStaticRoutes(r *gin.Engine, dir string) {
	if dir == "" {
		r.NoRoute(notFound)
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		slog.Warn("Static directory not available, frontend assets disabled", slog.String("dir", dir))
		r.NoRoute(notFound)
		return
	}

	// static.Serve aborts the chain once it has written a file, so misses
	// fall through to notFound.
	serveStatic := static.Serve("/", static.LocalFile(dir, false))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			serveStatic(c)
		}
	}, notFound)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
}
