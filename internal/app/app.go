package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginadapter "github.com/paydeck/paydeck/internal/adapter/inbound/gin"
	"github.com/paydeck/paydeck/internal/adapter/outbound/payprovider"
	"github.com/paydeck/paydeck/internal/infra/config"
	"github.com/paydeck/paydeck/internal/infra/httpclient"
	"github.com/paydeck/paydeck/internal/port/outbound"
	"github.com/paydeck/paydeck/internal/shared/logger"
	"github.com/paydeck/paydeck/internal/shared/middleware"
)

// App wires configuration, provider adapters, and the HTTP router.
type App struct {
	config   *config.Config
	logger   *zap.Logger
	client   *http.Client
	registry outbound.ProviderRegistryPort
	router   *gin.Engine
}

// LoadConfig loads the application configuration.
func LoadConfig() (*config.Config, error) {
	return config.Load()
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	zapLog, err := logger.NewZapLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := httpclient.NewWithBreaker(cfg.HTTPClient, cfg.Breaker)

	registry := payprovider.NewDefaultRegistry(client, payprovider.Secrets{
		FlutterwaveSecretKey: cfg.Providers.Flutterwave.SecretKey,
		PaystackSecretKey:    cfg.Providers.Paystack.SecretKey,
	})

	app := &App{
		config:   cfg,
		logger:   zapLog,
		client:   client,
		registry: registry,
	}
	app.router = app.setupRouter()

	return app, nil
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	if a.config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	ginadapter.RegisterProviderRoutes(api, ginadapter.NewProviderAdapter(a.registry))

	providers := api.Group("/providers/:provider")
	ginadapter.RegisterDepositRoutes(providers, ginadapter.NewDepositAdapter(a.registry))
	ginadapter.RegisterPayoutRoutes(providers, ginadapter.NewPayoutAdapter(a.registry))

	return r
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Registry returns the provider registry.
func (a *App) Registry() outbound.ProviderRegistryPort {
	return a.registry
}

// Stop flushes buffered log entries and releases idle connections.
func (a *App) Stop() {
	a.client.CloseIdleConnections()
	_ = a.logger.Sync()
}
