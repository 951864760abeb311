package main

import (
	"context"
	"embed"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/garnizeh/dogwalk/api"
	dbfs "github.com/garnizeh/dogwalk/db"
	"github.com/garnizeh/dogwalk/internal/config"
	"github.com/garnizeh/dogwalk/internal/db"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// local dev convenience; production sets real env vars
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT secret is required (set DOGWALK_JWT_SECRET or jwt_secret in the config file)")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting dogwalk server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection pool
	database, err := db.New(ctx, cfg.DatabasePath, cfg.MaxConns, logger)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	// Provision schema (and demo seed on an empty database). A broken
	// database is fatal; serving half-initialized is worse than not serving.
	var noSeed embed.FS
	seedFS := dbfs.SeedFiles
	if !cfg.SeedDemoData {
		seedFS = noSeed
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations, seedFS); err != nil {
		log.Fatalf("Failed to provision schema: %v", err)
	}

	handler := api.SetupRoutes(cfg, version, buildTime, database)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
