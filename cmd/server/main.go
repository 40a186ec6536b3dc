package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/farmstay/farmstay-server/internal/api"
	"github.com/farmstay/farmstay-server/internal/config"
	"github.com/farmstay/farmstay-server/internal/repository"
	"github.com/farmstay/farmstay-server/internal/seed"
	"github.com/farmstay/farmstay-server/internal/service"
	"github.com/farmstay/farmstay-server/internal/store"
	"github.com/farmstay/farmstay-server/internal/utils"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	log := utils.NewLogger()

	// Set up the local storage file
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}
	defer db.Close()

	// Create repository
	repo := repository.NewSQLiteRepository(db)

	// Create the stores, hydrating persisted state or seeding defaults
	ctx := context.Background()
	sessions, err := store.NewSessionStore(ctx, repo, seed.Users(), log)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	data, err := store.NewDataStore(ctx, repo, seed.Farmhouses(), log)
	if err != nil {
		log.Fatalf("Failed to initialize data store: %v", err)
	}

	// Create service
	svc := service.NewDefaultService(sessions, data, cfg.Auth.JWTSecret)

	// Create API handler
	handler := api.NewHandler(svc)

	// Set up Gin router
	router := gin.Default()

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	// Set up routes
	handler.SetupRoutes(router)

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("Starting server on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
