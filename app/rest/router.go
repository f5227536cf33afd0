package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kalinga-portal/app/port"
	"kalinga-portal/app/rest/handlers"
	custommw "kalinga-portal/app/rest/middleware"
)

// RouterConfig holds everything the HTTP surface depends on.
type RouterConfig struct {
	Logger       *slog.Logger
	Identities   port.IdentityProvider
	Auth         port.SessionAuthenticator
	Provisioner  port.AccountProvisioner
	Resolver     port.ProfileResolver
	Remover      port.AccountRemover
	Updater      port.AccountUpdater
	Admin        port.AdminAuthenticator
	Profiles     port.ProfileStore
	DBHealth     handlers.Pinger
	KratosHealth handlers.Pinger
	Production   bool
}

// NewRouter creates and configures the Echo router.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	authHandler := handlers.NewAuthHandler(
		config.Auth, config.Provisioner, config.Resolver, config.Production, config.Logger)
	adminHandler := handlers.NewAdminHandler(
		config.Admin, config.Provisioner, config.Remover, config.Profiles, config.Production, config.Logger)
	accountHandler := handlers.NewAccountHandler(
		config.Resolver, config.Updater, config.Remover, config.Production, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DBHealth, config.KratosHealth, config.Logger)

	sessionGate := custommw.NewSessionGate(config.Identities, config.Production, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))
	e.Use(sessionGate.Gate())

	v1 := e.Group("/v1")

	// Health endpoints, no auth required.
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Public auth endpoints.
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.GET("/role", authHandler.Role)

	authProtected := auth.Group("")
	authProtected.Use(custommw.RequireAuth())
	authProtected.POST("/logout", authHandler.Logout)

	// Administrator surface: trusted on the admin cookie, provider refresh
	// bypassed by the gate.
	admin := v1.Group("/admin")
	admin.POST("/login", adminHandler.Login)
	admin.POST("/logout", adminHandler.Logout)

	adminProtected := admin.Group("")
	adminProtected.Use(custommw.RequireAdmin())
	adminProtected.POST("/offices", adminHandler.CreateOffice)
	adminProtected.GET("/offices", adminHandler.ListOffices)
	adminProtected.GET("/stakeholders", adminHandler.ListStakeholders)
	adminProtected.DELETE("/accounts/:id", adminHandler.DeleteAccount)

	// The signed-in user's own account.
	account := v1.Group("/account")
	account.Use(custommw.RequireAuth())
	account.GET("/profile", accountHandler.GetProfile)
	account.PUT("/profile", accountHandler.UpdateProfile)
	account.DELETE("", accountHandler.DeleteSelf)

	return e
}
