package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/taskflow/workspace-api/internal/api/handler"
	"github.com/taskflow/workspace-api/internal/api/middleware"
	"github.com/taskflow/workspace-api/internal/core/service"
	"github.com/taskflow/workspace-api/internal/infrastructure/config"
	"github.com/taskflow/workspace-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered
// and the dependency graph wired through constructors: no globals beyond the
// logger singleton and the prometheus default registry.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskflow"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	workspaceRepo := postgres.NewWorkspaceRepository(db)

	hasher := service.NewBcryptHasher(cfg.BcryptCost, cfg.HashWorkers)
	tokens := service.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authz := service.NewAuthorizer(workspaceRepo)

	authService := service.NewAuthService(userRepo, hasher, tokens)
	workspaceService := service.NewWorkspaceService(workspaceRepo, userRepo, authz)

	authHandler := handler.NewAuthHandler(authService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	authMiddleware := middleware.Auth(tokens)

	// --- Root probe ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "TaskFlow API is running"})
	})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Workspace routes (authenticated) ---
	ws := e.Group("/workspaces", authMiddleware)
	ws.POST("", workspaceHandler.Create)
	ws.GET("", workspaceHandler.List)
	ws.GET("/:id", workspaceHandler.Detail)
	ws.POST("/:id/members", workspaceHandler.Invite)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
