package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/sikeu/finance-api/docs"
	"github.com/sikeu/finance-api/internal/api/handler"
	"github.com/sikeu/finance-api/internal/api/metrics"
	"github.com/sikeu/finance-api/internal/api/middleware"
	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
)

// Dependencies holds everything the router wires into handlers.
type Dependencies struct {
	Auth   ports.AuthService
	Tokens ports.TokenVerifier

	Receivables ports.RecordService[domain.PiutangPelanggan]
	Payments    ports.RecordService[domain.PembayaranPiutang]
	Projects    ports.RecordService[domain.Proyek]
	Costs       ports.RecordService[domain.BiayaProyek]

	// HealthChecks are pinged by GET /health/ready.
	HealthChecks []handler.HealthCheck
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(metrics.Middleware())

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Finance routes: bearer token + finance officer role ---
	finance := e.Group("",
		middleware.Auth(deps.Tokens),
		middleware.RequireRole(domain.RoleFinanceOfficer),
	)
	handler.NewRecordHandler(deps.Receivables).Register(finance, "/piutang-pelanggan")
	handler.NewRecordHandler(deps.Payments).Register(finance, "/pembayaran-piutang")
	handler.NewRecordHandler(deps.Projects).Register(finance, "/proyek")
	handler.NewRecordHandler(deps.Costs).Register(finance, "/biaya-proyek")

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.HealthChecks...)
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operational ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
