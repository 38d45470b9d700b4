package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/sweet-shop-api/internal/api/handler"
	"github.com/sweetshop/sweet-shop-api/internal/api/middleware"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed once at
// startup and passed explicitly.
type Dependencies struct {
	AuthService  ports.AuthService
	SweetService ports.SweetService
	Tokens       ports.TokenService
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	authenticated := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Sweets routes ---
	sweetHandler := handler.NewSweetHandler(deps.SweetService)
	sweets := e.Group("/api/sweets", authenticated)
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.POST("/:id/purchase", sweetHandler.Purchase)
	sweets.POST("", sweetHandler.Create, adminOnly)
	sweets.POST("/:id/restock", sweetHandler.Restock, adminOnly)
	sweets.PUT("/:id", sweetHandler.Update, adminOnly)
	sweets.DELETE("/:id", sweetHandler.Delete, adminOnly)

	// --- Claim-echo routes ---
	protectedHandler := handler.NewProtectedHandler()
	protected := e.Group("/api/protected", authenticated)
	protected.GET("/user", protectedHandler.User)
	protected.GET("/admin", protectedHandler.Admin, adminOnly)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
