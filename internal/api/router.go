package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/civicvote/voting-system/docs"
	"github.com/civicvote/voting-system/internal/api/handler"
	"github.com/civicvote/voting-system/internal/api/middleware"
	"github.com/civicvote/voting-system/internal/core/ports"
)

// Deps is everything the HTTP layer needs. Pingers are checked by /health/ready.
type Deps struct {
	Auth       ports.AuthService
	Tokens     ports.TokenAuthenticator
	Admins     ports.AdminChecker
	Users      ports.UserService
	Candidates ports.CandidateService
	Voting     ports.VotingService
	Reports    ports.ReportService
	Pingers    map[string]handler.Pinger
	Logger     zerolog.Logger
	// Metrics mounts the Prometheus middleware and /metrics.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("voting_http"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	candidateHandler := handler.NewCandidateHandler(d.Candidates)
	voteHandler := handler.NewVoteHandler(d.Voting)
	reportHandler := handler.NewReportHandler(d.Reports)
	healthHandler := handler.NewHealthHandler(d.Pingers)

	authMiddleware := middleware.Auth(d.Tokens)
	adminOnly := middleware.RequireAdmin(d.Admins)

	// --- User directory ---
	users := e.Group("/user")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)
	users.GET("/profile", userHandler.Profile, authMiddleware)
	users.PUT("/profile/password", userHandler.ChangePassword, authMiddleware)
	users.DELETE("/profile", userHandler.Delete, authMiddleware)

	// --- Candidates ---
	candidates := e.Group("/candidates")
	candidates.GET("/vote/count", reportHandler.Results)
	candidates.GET("/candidateList", reportHandler.Roster)
	candidates.POST("/vote/:id", voteHandler.Cast, authMiddleware)
	candidates.POST("", candidateHandler.Create, authMiddleware, adminOnly)
	candidates.PUT("/:id", candidateHandler.Update, authMiddleware, adminOnly)
	candidates.DELETE("/:id", candidateHandler.Delete, authMiddleware, adminOnly)

	// --- Health checks (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one structured zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
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
