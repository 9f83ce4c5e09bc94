package main

import (
	"log"

	"github.com/ArvisPrime/promptgen/config"
	"github.com/ArvisPrime/promptgen/internal/api"
	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/ArvisPrime/promptgen/internal/services"
	"github.com/ArvisPrime/promptgen/pkg/logger"
)

// @title promptgen API
// @version 1.0
// @description Prompt refinement backend: templates, AI generation, history.

// @host localhost:8080
// @BasePath /api

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.Template{}, &models.GlobalPrompt{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := services.SeedDefaultTemplates(); err != nil {
		log.Fatalf("failed to seed templates: %v", err)
	}

	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
