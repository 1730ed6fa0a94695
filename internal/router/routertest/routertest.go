// Package routertest builds a fully wired API server over an in-memory database for tests.
package routertest

import (
	"testing"

	"github.com/labstack/echo/v4"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/suteetoe/jobboard/internal/router"
	"github.com/suteetoe/jobboard/pkg/config"
	"github.com/suteetoe/jobboard/pkg/database/databasetest"
	"github.com/suteetoe/jobboard/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Server is a test API server and the database behind it
type Server struct {
	Echo    *echo.Echo
	DB      *gorm.DB
	Config  *config.Config
	Metrics *prometheus.Metrics
}

// Config returns the configuration used by New
func Config() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		JWT:     config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1},
		Auth:    config.AuthConfig{BcryptCost: bcrypt.MinCost},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
		Metrics: config.MetricsConfig{Prefix: "jobboard_test"},
	}
}

// New builds a server with its own database and metrics registry
func New(t testing.TB) *Server {
	t.Helper()
	return NewWithConfig(t, Config())
}

// NewWithConfig builds a server using cfg
func NewWithConfig(t testing.TB, cfg *config.Config) *Server {
	t.Helper()

	db := databasetest.New(t)
	reg := prom.NewRegistry()
	metrics := prometheus.NewMetrics(cfg.Metrics.Prefix, reg, reg)

	e := router.New(router.Deps{
		Config:  cfg,
		DB:      db,
		Logger:  zap.NewNop(),
		Metrics: metrics,
	})
	return &Server{Echo: e, DB: db, Config: cfg, Metrics: metrics}
}
