package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/adamovic6666/bus-layout-builder/internal/config"     // Internal config loader
	"github.com/adamovic6666/bus-layout-builder/internal/database"   // MySQL connection helper
	"github.com/adamovic6666/bus-layout-builder/internal/handler"    // HTTP handlers
	"github.com/adamovic6666/bus-layout-builder/internal/middleware" // Cache and rate limiting middleware
	"github.com/adamovic6666/bus-layout-builder/internal/queue"      // plan.saved consumer
	"github.com/adamovic6666/bus-layout-builder/internal/repository" // Data access layer
	"github.com/adamovic6666/bus-layout-builder/internal/router"     // Route registration
)

func main() {
	// Load a .env file when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Repositories share the single DB handle.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	plans := repository.NewPlanRepo(db)

	// Redis backs the public response cache and rate limiting.  A nil client
	// disables both gracefully.
	rdb := config.NewRedisClient()

	e := echo.New()
	router.RegisterRoutes(e) // health check

	auth := handler.NewAuthHandler(cfg, users, tokens)
	router.RegisterAuth(e, auth, cfg.JWTSecret)

	editor := handler.NewEditorHandler(plans)
	editorMws := []echo.MiddlewareFunc{}
	if rdb != nil {
		editorMws = append(editorMws, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}
	router.RegisterEditor(e, editor, cfg.JWTSecret, editorMws...)

	public := handler.NewPublicHandler(plans)
	publicMws := []echo.MiddlewareFunc{}
	if rdb != nil {
		publicMws = append(publicMws, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	router.RegisterPublic(e, public, publicMws...)

	// Consume plan.saved events in the background; the consumer reconnects on
	// its own and never brings the server down.
	go func() {
		if err := queue.StartPlanSavedConsumer(); err != nil {
			log.Printf("plan-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
