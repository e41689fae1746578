package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playfair-backend/config"
	"playfair-backend/server"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file (defaults are used when empty)")
	genConfig  = flag.Bool("genconfig", false, "Print the default configuration as YAML and exit")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime)
	log.SetPrefix("[PLAYFAIR] ")

	if *genConfig {
		if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := checkStaticDir(cfg.StaticDir); err != nil {
		log.Printf("Static directory unavailable, only the API will be served: %v", err)
	}

	gin.SetMode(cfg.GinMode)
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Printf("API endpoints (also under /api/v1):")
	log.Printf("  POST /api/encrypt    - Encrypt text with a Playfair key")
	log.Printf("  POST /api/decrypt    - Decrypt text with a Playfair key")
	log.Printf("  POST /api/key-square - Show the 5x5 key square for a key")
	log.Printf("  GET  /api/health     - Health check")
	log.Printf("Open http://localhost:%d in your browser", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down server...")
	case err := <-srv.Done():
		if err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
}

// checkStaticDir verifies that the front-end directory exists
func checkStaticDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
