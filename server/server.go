// Package server wires the Playfair API into a gin engine and owns the
// HTTP listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"slices"
	"sync"

	"playfair-backend/config"
	"playfair-backend/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// apiPrefixes lists the mount points of the API; /api is what the bundled
// front-end calls.
var apiPrefixes = []string{"/api", "/api/v1"}

type Server struct {
	cfg    *config.Config
	router *gin.Engine

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	done       chan error
}

func New(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		router: newRouter(cfg),
	}
}

func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	router.HandleMethodNotAllowed = true

	playfairHandler := handlers.NewPlayfairHandler(cfg.MaxKeyLength)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	for _, prefix := range apiPrefixes {
		api := router.Group(prefix)
		{
			api.GET("/health", playfairHandler.HealthCheck)

			limited := api.Group("", handlers.LimitBody(cfg.MaxBodyBytes))
			limited.POST("/encrypt", playfairHandler.Encrypt)
			limited.POST("/decrypt", playfairHandler.Decrypt)
			limited.POST("/key-square", playfairHandler.KeySquare)
		}
	}

	router.NoMethod(playfairHandler.MethodNotAllowed)
	router.NoRoute(staticHandler.Serve)

	return router
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	return corsCfg
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return errors.New("server already started")
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}

	s.listener = ln
	s.httpServer = &http.Server{Handler: s.router}
	s.done = make(chan error, 1)

	go func(srv *http.Server, done chan<- error) {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}(s.httpServer, s.done)

	log.Printf("Server listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Done reports the result of the serve loop once it exits.
func (s *Server) Done() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Stop gracefully shuts the server down. Stopping a server that was never
// started is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.httpServer, s.done
	s.httpServer, s.listener = nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return <-done
}
