package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/internal/config"
	"github.com/amitiii/udaan-next-gen-translator-api/internal/handler"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Server represents the translation service server.
type Server struct {
	config         *config.Config
	router         *mux.Router
	handlerManager *handler.HandlerManager
}

// NewServer creates a new translation service server.
func NewServer(cfg *config.Config) (*Server, error) {
	if _, err := logger.Init(cfg.LogEnv); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	router := mux.NewRouter()

	handlerManager, err := handler.NewHandlerManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}
	handlerManager.SetupAllRoutes(router)

	return &Server{
		config:         cfg,
		router:         router,
		handlerManager: handlerManager,
	}, nil
}

// Start starts the HTTP server and blocks until it exits or a shutdown
// signal arrives.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Base().Info("Starting translation service", zap.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Base().Info("Shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}

func main() {
	// .env is for local development; environment set by the deployment wins.
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: .env file not found or skipped: %v", err)
	}

	cfg := config.Load()

	server, err := NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer logger.Sync()

	logger.Base().Info("Server initialized",
		zap.String("port", cfg.Port),
		zap.String("translator_mode", cfg.TranslatorMode))

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
