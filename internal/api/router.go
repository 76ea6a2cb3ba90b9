package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/arabshield/platform-api/docs"
	"github.com/arabshield/platform-api/internal/api/handler"
	"github.com/arabshield/platform-api/internal/api/middleware"
	"github.com/arabshield/platform-api/internal/core/domain"
	"github.com/arabshield/platform-api/internal/core/ports"
	"github.com/arabshield/platform-api/internal/core/service"
)

// Deps bundles everything the router needs. Construction and lifecycle of the
// watcher and dispatcher belong to main; the router only wires routes.
type Deps struct {
	DB               *mongo.Database
	Redis            *redis.Client
	Watcher          *service.SettingsWatcher
	SettingsService  ports.SettingsService
	ProfileService   ports.ProfileService
	AuthService      ports.AuthService
	AuditRepo        ports.AuditRepository
	NotificationRepo ports.NotificationRepository
	FAQ              *service.FAQService
	JWTSecret        string
	Log              zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("arabshield"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	settingsHandler := handler.NewSettingsHandler(d.SettingsService, d.Watcher)
	auditHandler := handler.NewAuditHandler(d.AuditRepo)
	profileHandler := handler.NewProfileHandler(d.ProfileService)
	notificationHandler := handler.NewNotificationHandler(d.NotificationRepo)
	chatHandler := handler.NewChatHandler(d.FAQ)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/chat/ask", chatHandler.Ask)

	// --- Health probes + operability (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Dashboard routes (auth + maintenance gate) ---
	dash := e.Group("", middleware.Auth(d.JWTSecret, d.ProfileService), middleware.Maintenance(d.Watcher))
	dash.GET("/settings", settingsHandler.Get)
	dash.PATCH("/settings/:key", settingsHandler.UpdateOne, middleware.RequireAdmin())
	dash.PUT("/settings", settingsHandler.UpdateMany, middleware.RequireAdmin())
	dash.GET("/audit", auditHandler.List, middleware.Require(domain.ActionViewAllData))
	dash.GET("/profile", profileHandler.Me)
	dash.PUT("/users/:id/role", profileHandler.ChangeRole, middleware.Require(domain.ActionManageUsers))
	dash.GET("/notifications", notificationHandler.List)
	dash.POST("/notifications/:id/read", notificationHandler.MarkRead)

	return e
}
