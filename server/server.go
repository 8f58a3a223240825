// Package server wires the HTTP surface around the cleaning pipeline.
package server

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"datapurity/internal/config"
	"datapurity/server/handlers"
	"datapurity/server/middleware"
)

// Server is the HTTP adapter. It owns no state beyond configuration;
// every cleaning run is independent.
type Server struct {
	config *config.Config
	router *gin.Engine
	logger *slog.Logger
}

// New builds the server and its route table.
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	cleanHandler := handlers.NewCleanHandler(cfg.Cleaning, cfg.MaxUploadSizeMB<<20)

	api := router.Group("/api")
	api.GET("/health", handlers.HandleHealth)
	api.POST("/clean", middleware.RateLimit(cfg.RateLimitRPS), cleanHandler.HandleClean)

	return &Server{
		config: cfg,
		router: router,
		logger: slog.Default().With("component", "server"),
	}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving on the configured port and blocks.
func (s *Server) Run() error {
	addr := ":" + s.config.Port
	s.logger.Info("Starting server", "addr", addr)
	if err := s.router.Run(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
