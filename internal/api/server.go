package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cinehall/internal/cache"
	"cinehall/internal/catalog"
	"cinehall/internal/config"
	"cinehall/internal/handlers"
	"cinehall/internal/logger"
	"cinehall/internal/messaging"
	"cinehall/internal/middleware"
	"cinehall/internal/payment"
	"cinehall/internal/service"
	"cinehall/internal/storage"
)

// Server wires configuration, catalog, storage, cache, messaging and the
// HTTP layer together.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	nats     *messaging.NATSClient
	cache    *cache.Client
	store    storage.Store
	services *service.Services
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	store := buildStore(cfg)

	// Seeded catalog until an admin surface exists.
	cat := catalog.Seeded()

	services := service.NewServices(cat, store, &payment.SimulatedGateway{})

	// Rebuild orders and seat state from the last snapshot.
	if err := services.Reservations.Restore(context.Background()); err != nil {
		logger.Fatal("Failed to restore orders", "error", err)
	}

	var cacheClient *cache.Client
	if cfg.CacheEnabled {
		c, err := cache.New(cfg.Cache)
		if err != nil {
			slog.Warn("Cache unavailable, continuing without it", "error", err)
		} else {
			cacheClient = c
		}
	}

	var natsClient *messaging.NATSClient
	var publisher messaging.Publisher
	if cfg.NATS.Enabled {
		nc, err := messaging.NewNATSClient(cfg.NATS)
		if err != nil {
			slog.Warn("NATS unavailable, notifications disabled", "error", err)
		} else {
			natsClient = nc
			publisher = nc
		}
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		nats:     natsClient,
		cache:    cacheClient,
		store:    store,
		services: services,
	}
	server.setupRoutes(publisher)

	return server
}

func buildStore(cfg *config.Config) storage.Store {
	switch cfg.StorageBackend {
	case "postgres":
		store, err := storage.NewPostgresStore(cfg.Postgres)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		return store
	case "none":
		return storage.NopStore{}
	default:
		store, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to create file store", "error", err)
		}
		return store
	}
}

func (s *Server) setupRoutes(publisher messaging.Publisher) {
	h := handlers.NewHandlers(s.services, s.cache, publisher)

	api := s.router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", h.CreateOrder)
			orders.POST("/reserve", h.ReserveOrder)
			orders.POST("/expire", h.ExpireOrders)
			orders.PATCH("/pay", h.PayOrder)
			orders.PATCH("/cancel", h.CancelOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:id", h.GetOrder)
		}

		seats := api.Group("/seats")
		{
			seats.GET("", h.ListSeats)
			seats.GET("/price", h.PriceSeat)
		}

		pricing := api.Group("/pricing")
		{
			pricing.GET("/strategy", h.GetStrategy)
			pricing.PUT("/strategy", h.SetStrategy)
		}

		api.GET("/shows", h.ListShows)
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "cinehall-api",
		"version": "1.0.0",
	})
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes external connections.
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			slog.Error("Error closing cache connection", "error", err)
		}
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
			return err
		}
	}
	return nil
}
