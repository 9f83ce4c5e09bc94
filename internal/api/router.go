package api

import (
	"github.com/ArvisPrime/promptgen/config"
	_ "github.com/ArvisPrime/promptgen/docs"
	"github.com/ArvisPrime/promptgen/internal/api/ai"
	"github.com/ArvisPrime/promptgen/internal/api/history"
	"github.com/ArvisPrime/promptgen/internal/api/prompts"
	"github.com/ArvisPrime/promptgen/internal/api/templates"
	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/localstore"
	"github.com/ArvisPrime/promptgen/internal/middleware"
	"github.com/ArvisPrime/promptgen/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if _, err = database.Connect(cfg.DBPath); err != nil {
		return nil, err
	}

	if err = database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		return nil, err
	}
	ledger, err := localstore.NewHistoryLedger(store)
	if err != nil {
		return nil, err
	}
	customTemplates, err := localstore.NewCustomTemplateStore(store)
	if err != nil {
		return nil, err
	}

	services.History = ledger
	services.CustomTemplates = customTemplates
	services.Chat = services.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	services.DefaultModel = cfg.OpenAIDefaultModel

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API
	apiGroup := router.Group("/api")
	{
		templates.RegisterRoutes(apiGroup)
		prompts.RegisterRoutes(apiGroup)
		ai.RegisterRoutes(apiGroup)
		history.RegisterRoutes(apiGroup)
	}

	return router, nil
}
