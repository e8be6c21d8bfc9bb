package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"profileparser/config"
	"profileparser/database"
	"profileparser/handlers"
	"profileparser/middleware"
	"profileparser/models"
	"profileparser/services"
	"profileparser/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogWarn("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	var profileModel *models.ProfileModel
	db, err := database.Connect(cfg.Database)
	if err != nil {
		utils.LogWarn("Database unavailable, profile merge endpoint disabled", map[string]string{"error": err.Error()})
	} else {
		profileModel = models.NewProfileModel(db)
		if err := profileModel.EnsureSchema(); err != nil {
			utils.LogError("Failed to prepare profile schema", err)
			profileModel = nil
		}
	}

	store, err := services.NewS3Service()
	if err != nil {
		utils.LogWarn("S3 unavailable, document storage endpoints disabled", map[string]string{"error": err.Error()})
		store = nil
	}

	profileHandler := handlers.NewProfileHandler(store, profileModel)
	limiters := middleware.CreateRateLimiters()

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadSize))

	r.GET("/api/health", handlers.Health)

	api := r.Group("/api/profile")
	api.Use(limiters["general"].Limit())
	{
		api.POST("/parse", limiters["parse"].Limit(), middleware.ValidateContentType("multipart/form-data"), profileHandler.ParseResume)
		api.POST("/parse-s3", limiters["parse"].Limit(), middleware.ValidateContentType("application/json"), profileHandler.ParseFromS3)
		api.POST("/merge", middleware.ValidateContentType("application/json"), profileHandler.MergeProfile)
		api.DELETE("/document/:key", profileHandler.DeleteDocument)
	}

	utils.LogInfo("Starting profile parser service", map[string]string{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.LogError("Server stopped", err)
	}
}
