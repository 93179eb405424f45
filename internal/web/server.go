// Package web exposes the matching engine over HTTP: a thin JSON API
// for interactive lookups against a loaded candidate directory.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/namematch/internal/config"
	"github.com/namematch/internal/matcher"
)

// Config holds the web server settings.
type Config struct {
	Host string
	Port int
}

// ConfigFromEnv builds the server config from environment variables.
func ConfigFromEnv() *Config {
	return &Config{
		Host: config.GetEnv("WEB_HOST", "127.0.0.1"),
		Port: config.GetEnvInt("WEB_PORT", 8080),
	}
}

// Server serves search requests against a fixed candidate snapshot.
type Server struct {
	config     *Config
	engine     *matcher.Engine
	candidates []string
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a web server over an engine and candidate list.
// The snapshot is immutable; restart or rebuild the server to pick up
// directory changes.
func NewServer(cfg *Config, engine *matcher.Engine, candidates []string) *Server {
	s := &Server{
		config:     cfg,
		engine:     engine,
		candidates: candidates,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", s.handleSearch).Methods("GET")
	api.HandleFunc("/search/batch", s.handleBatchSearch).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.Use(requestLogging())
	s.router.Use(cors())
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}
