package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ddcrdc/content-api/internal/api/handler"
	"github.com/ddcrdc/content-api/internal/api/middleware"
	"github.com/ddcrdc/content-api/internal/core/service"
	redisdb "github.com/ddcrdc/content-api/internal/infrastructure/db/redis"
	"github.com/ddcrdc/content-api/internal/infrastructure/db/sqlite"
	healthhandlers "github.com/ddcrdc/content-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login rate limiting is then disabled.
func NewRouter(db *sql.DB, rdb *redis.Client, jwtSecret, corsOrigin string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("ddc"))

	// --- Dependencies ---
	tokens := service.NewTokenService(jwtSecret, 24*time.Hour)
	authService := service.NewAuthService(sqlite.NewAuthRepository(db), tokens)
	var limiter *redisdb.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
	}
	authHandler := handler.NewAuthHandler(authService, limiter)

	contentService := service.NewContentService(sqlite.NewContentRepository(db), log)
	contentHandler := handler.NewContentHandler(contentService)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthhandlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", healthhandlers.NewHealthDependenciesHandler(db, rdb).Readiness)

	// --- API routes ---
	api := e.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	// Public listings: reduced projection, implicit status filter.
	api.GET("/:table", contentHandler.List)

	// Everything else on the content tables requires a bearer token.
	protected := api.Group("", middleware.Auth(tokens))
	protected.GET("/:table/:id", contentHandler.Get)
	protected.POST("/:table", contentHandler.Create)
	protected.PUT("/:table/:id", contentHandler.Update)
	protected.DELETE("/:table/:id", contentHandler.Delete)

	return e
}
