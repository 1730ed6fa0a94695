// Package router assembles the echo server of the job board API.
package router

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/suteetoe/jobboard/internal/handler"
	"github.com/suteetoe/jobboard/internal/middleware"
	"github.com/suteetoe/jobboard/internal/service"
	"github.com/suteetoe/jobboard/internal/store"
	"github.com/suteetoe/jobboard/pkg/config"
	"github.com/suteetoe/jobboard/pkg/jwtutil"
	"github.com/suteetoe/jobboard/pkg/logger"
	"github.com/suteetoe/jobboard/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the long-lived collaborators shared by every request
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Logger  *zap.Logger
	// Metrics may be nil, which disables collection and the /metrics endpoint
	Metrics *prometheus.Metrics
}

// New wires store, services and handlers and registers every route
func New(deps Deps) *echo.Echo {
	cfg := deps.Config
	production := cfg.Server.IsProduction()

	st := store.New(deps.DB, deps.Metrics)
	tokens := jwtutil.NewJWTUtil(&cfg.JWT)

	h := handler.New(handler.Deps{
		Auth:         service.NewAuthService(st, tokens, cfg.Auth.BcryptCost),
		Jobs:         service.NewJobService(st),
		Applications: service.NewApplicationService(st),
		Profiles:     service.NewProfileService(st),
		DB:           deps.DB,
		Metrics:      deps.Metrics,
		Production:   production,
	})
	auth := middleware.NewAuth(tokens, deps.Metrics)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(production)

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
	}))
	e.Use(middleware.RequestIDMiddleware(deps.Logger))
	e.Use(logger.Middleware())
	e.Use(middleware.MetricsMiddleware(deps.Metrics))

	// Operational routes
	e.GET("/", h.Root)
	e.GET("/health", h.HealthCheck)
	e.GET("/metrics", h.Metrics)

	api := e.Group("/api")

	// Authentication
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", h.Register)
	authRoutes.POST("/login", h.Login)
	authRoutes.GET("/me", h.Me, auth.Authenticate)

	// Jobs - reads are public, admins may also list inactive postings
	jobs := api.Group("/jobs")
	jobs.GET("", h.ListJobs, auth.Identify)
	jobs.GET("/:id", h.GetJob)
	jobs.POST("", h.CreateJob, auth.Authenticate, auth.RequireAdmin)
	jobs.PUT("/:id", h.UpdateJob, auth.Authenticate, auth.RequireAdmin)
	jobs.DELETE("/:id", h.DeleteJob, auth.Authenticate, auth.RequireAdmin)

	// Applications - all require authentication
	applications := api.Group("/applications", auth.Authenticate)
	applications.GET("/my", h.ListMyApplications)
	applications.GET("/:id", h.GetApplication)
	applications.POST("", h.Apply)
	applications.GET("", h.ListApplications, auth.RequireAdmin)
	applications.PUT("/:id/status", h.UpdateApplicationStatus, auth.RequireAdmin)
	applications.POST("/:id/feedback", h.AddFeedback)

	// Users and profiles - all require authentication
	users := api.Group("/users", auth.Authenticate)
	users.GET("", h.ListUsers, auth.RequireAdmin)
	users.GET("/profile", h.GetProfile)
	users.PUT("/profile", h.UpdateProfile)
	users.POST("/experience", h.AddExperience)
	users.PUT("/experience/:id", h.UpdateExperience)
	users.DELETE("/experience/:id", h.DeleteExperience)
	users.POST("/education", h.AddEducation)
	users.PUT("/education/:id", h.UpdateEducation)
	users.DELETE("/education/:id", h.DeleteEducation)

	return e
}
