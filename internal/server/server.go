package server

import (
	"log/slog"
	"net/http"

	"accounts-service/internal/config"
	"accounts-service/internal/handlers"
	"accounts-service/internal/middleware"
	"accounts-service/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "1M"

// Dependencies are the collaborators the router is built from.
// TokenService is required only when auth is enabled.
type Dependencies struct {
	Config       *config.Config
	Logger       *slog.Logger
	Manager      services.AccountManagerInterface
	Health       handlers.HealthChecker
	TokenService services.TokenServiceInterface
	RateLimiter  *middleware.RateLimiter
	Registerer   prometheus.Registerer
	Gatherer     prometheus.Gatherer
}

// New assembles the echo instance: global middleware, /health, /metrics and
// the /api group
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Registerer)

	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(maxBodySize))
	if origins := deps.Config.Server.CORSAllowOrigins; len(origins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		}))
	}

	healthHandler := handlers.NewHealthCheckHandler(deps.Health)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	var adminOnly []echo.MiddlewareFunc
	if deps.Config.Auth.Enabled {
		api.Use(middleware.RequireAuth(deps.TokenService))
		adminOnly = append(adminOnly, middleware.RequireAdmin())
	}

	handlers.NewCustomerHandler(deps.Manager).Register(api)
	handlers.NewAccountHandler(deps.Manager).Register(api, adminOnly...)

	return e
}
