package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/personal/inventory-api/docs"
	"github.com/personal/inventory-api/internal/api/handler"
	"github.com/personal/inventory-api/internal/api/middleware"
	"github.com/personal/inventory-api/internal/core/domain"
	"github.com/personal/inventory-api/internal/core/ports"
	"github.com/personal/inventory-api/internal/core/service"
	"github.com/personal/inventory-api/internal/infrastructure/config"
	mongodb "github.com/personal/inventory-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/personal/inventory-api/internal/infrastructure/db/redis"
	"github.com/personal/inventory-api/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	tokenService := security.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	resolver := service.NewPrincipalResolver(userRepo)
	authService := service.NewAuthService(userRepo, roleRepo, resolver, tokenService, limiter, audit, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	// The gate runs on every request: it attaches a principal when a valid
	// bearer token is present and otherwise lets the request through for the
	// route-level checks to reject.
	e.Use(middleware.Auth(tokenService, resolver, log))

	// --- Auth routes ---
	e.POST("/api/auth/signin", authHandler.SignIn)
	e.POST("/api/auth/signup", authHandler.SignUp)

	// --- Product routes ---
	userOrAdmin := middleware.RequireAuthority(domain.RoleUser.Authority(), domain.RoleAdmin.Authority())
	adminOnly := middleware.RequireAuthority(domain.RoleAdmin.Authority())

	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get, userOrAdmin)
	e.POST("/api/products", productHandler.Create, adminOnly)
	e.PUT("/api/products/:id", productHandler.Update, adminOnly)
	e.DELETE("/api/products/:id", productHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
