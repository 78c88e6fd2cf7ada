package main

import (
	"fmt"
	"log"
	"os"

	"ieso-dashboard/internal/api/handlers"
	"ieso-dashboard/internal/api/middleware"
	"ieso-dashboard/internal/config"
	"ieso-dashboard/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real env vars win either way.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfgPath := os.Getenv("IESO_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}
	log.Printf("Statistics dataset: %s", cfg.Stats.DatasetID)

	// Set up Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	client := data.NewClient()
	statsHandler := handlers.NewStatsHandler(client, cfg.StatsDataset())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/stats", statsHandler.GetStats)
		api.GET("/hourly-average", statsHandler.GetHourlyAverages)
		api.GET("/locations", statsHandler.ListLocations)

		api.GET("/options", handlers.GetOptions)
		api.GET("/datasets", handlers.ListDatasets(cfg.Datasets))
	}

	// Serve the web UI bundle if it has been built.
	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
