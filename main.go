package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"skizen/config"
	"skizen/database"
	"skizen/handlers"
	"skizen/middleware"
	"skizen/models"
	"skizen/repositories"
	"skizen/services"
	"skizen/storage"
	"skizen/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	if err := utils.InitLogger(cfg.Log); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	utils.Sugar.Info("starting skizen service")

	if err := database.InitMySQL(&cfg.Database); err != nil {
		utils.Sugar.Fatalf("init mysql failed: %v", err)
	}

	database.DB.AutoMigrate(
		&models.User{},
		&models.DesignWork{},
	)
	utils.Sugar.Info("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		utils.Sugar.Fatalf("init redis failed: %v", err)
	}
	utils.SetRedis(database.RedisClient)

	store, err := storage.NewDiskStore(cfg.Storage.BasePath, cfg.Storage.PublicBaseURL)
	if err != nil {
		utils.Sugar.Fatalf("init storage failed: %v", err)
	}

	tempDir := filepath.Join(cfg.Storage.BasePath, "temp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		utils.Sugar.Fatalf("create temp dir failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(database.DB).BuildContainer()
	thumbnailer := services.NewThumbnailer(services.NewFFmpegGrabber(cfg.Thumbnail))
	serviceContainer := services.NewContainer(repoContainer, store, thumbnailer, tempDir)
	handlers.SetServices(serviceContainer)

	if err := serviceContainer.Auth.EnsureAdmin(context.Background()); err != nil {
		utils.Sugar.Fatalf("seed admin failed: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(corsMiddleware(cfg))
	r.Static(cfg.Storage.PublicBaseURL, cfg.Storage.BasePath)
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	utils.Sugar.Infof("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		utils.Sugar.Fatalf("server start failed: %v", err)
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return cors.New(corsCfg)
}

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(), handlers.Login)
	}

	works := api.Group("/works")
	{
		works.GET("", handlers.ListWorks)
		works.GET("/featured", handlers.FeaturedWorks)
		works.GET("/categories", handlers.ListCategories)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", handlers.Logout)
		protected.GET("/auth/profile", handlers.GetProfile)

		protected.GET("/admin/works", handlers.ListRecentUploads)
		protected.POST("/admin/works", handlers.UploadWork)
		protected.PUT("/admin/works/:id", handlers.UpdateWork)
		protected.DELETE("/admin/works/:id", handlers.DeleteWork)
	}
}
