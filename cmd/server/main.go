package main

import (
	"fmt"
	"log"
	"time"

	"scene-api/internal/common/config"
	"scene-api/internal/common/middleware"
	"scene-api/internal/scene/handlers"
	"scene-api/internal/scene/service"
	"scene-api/internal/scene/store"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Scene API Service
// ============================================================

const version = "1.0.0"

func main() {
	cfg := config.Load()

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	scenes := store.NewSQLite(db)
	if err := scenes.Init("migrations/001_init_scenes.sql"); err != nil {
		log.Fatalf("init db: %v", err)
	}

	uploads := service.NewUploadStorage(cfg.UploadDir)
	sceneHandler := handlers.NewSceneHandler(scenes, cfg.ModelVersion)
	analyzeHandler := handlers.NewAnalyzeHandler(scenes, uploads, cfg.ModelVersion)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Scene API",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "Scene API",
			"version": version,
			"status":  "running",
			"model":   cfg.ModelVersion,
			"endpoints": fiber.Map{
				"health":       "/health/live",
				"convert":      "/api/v1/convert (POST)",
				"analyze":      "/api/v1/analyze (POST)",
				"analyze_file": "/api/v1/analyze/file (POST)",
				"scenes":       "/api/v1/scenes (GET)",
				"scene":        "/api/v1/scenes/:id (GET, POST)",
			},
		})
	})

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Scene Routes
	// ============================================================

	app.Post("/api/v1/convert", handlers.ConvertNotation)
	app.Post("/api/v1/analyze", analyzeHandler.Analyze)
	app.Post("/api/v1/analyze/file", analyzeHandler.AnalyzeFile)
	app.Get("/api/v1/scenes", sceneHandler.ListScenes)
	app.Get("/api/v1/scenes/:id", sceneHandler.GetScene)
	app.Post("/api/v1/scenes/:id", sceneHandler.IngestScene)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Scene API on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
