package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/blogforge/blog-api/docs"
	"github.com/blogforge/blog-api/internal/api/handler"
	"github.com/blogforge/blog-api/internal/api/middleware"
	"github.com/blogforge/blog-api/internal/core/service"
	"github.com/blogforge/blog-api/internal/infrastructure/config"
	"github.com/blogforge/blog-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/blogforge/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login throttling is disabled.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)

	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisinfra.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
	}

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	postService := service.NewPostService(postRepo, cfg.PageSize, log)

	authHandler := handler.NewAuthHandler(authService, tokenService)
	postHandler := handler.NewPostHandler(postService)

	requireAuth := middleware.Auth(tokenService)
	optionalAuth := middleware.AuthOptional(tokenService)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/jwt/refresh", authHandler.Refresh)
	e.POST("/auth/jwt/verify", authHandler.Verify)

	// --- Post routes ---
	// Reads are public; a presented token is still verified so the response
	// can reflect the caller. Writes always require authentication.
	posts := e.Group("/posts")
	posts.GET("", postHandler.List, optionalAuth)
	posts.POST("", postHandler.Create, requireAuth)
	posts.GET("/current_user", postHandler.Mine, requireAuth)
	posts.GET("/posts_for", postHandler.ByAuthor, requireAuth)
	posts.GET("/:id", postHandler.Get, optionalAuth)
	posts.PUT("/:id", postHandler.Update, requireAuth)
	posts.DELETE("/:id", postHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
