package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/agronhq/agron/internal/server/http/handlers"
	"github.com/agronhq/agron/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cropHandler := handlers.NewCropHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	jobHandler := handlers.NewJobHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/health", healthHandler.Check)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	crops := authed.Group("/crops")
	crops.GET("", cropHandler.List)
	crops.POST("", cropHandler.Create)
	crops.GET("/types", cropHandler.Types)
	crops.GET("/regions", cropHandler.Regions)
	crops.GET("/:id", cropHandler.Get)
	crops.PUT("/:id", cropHandler.Update)
	crops.DELETE("/:id", cropHandler.Delete)
	crops.PATCH("/:id/status", cropHandler.UpdateStatus)

	orders := authed.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Place)
	orders.GET("/statistics", orderHandler.Statistics)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.POST("/:id/cancel", orderHandler.Cancel)

	jobs := authed.Group("/jobs")
	jobs.GET("/available", jobHandler.Available)
	jobs.GET("/mine", jobHandler.Mine)
	jobs.GET("/statistics", jobHandler.Statistics)
	jobs.POST("/accept", jobHandler.Accept)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PATCH("/:id/pickup", jobHandler.Pickup)
	jobs.PATCH("/:id/delivered", jobHandler.Delivered)
	jobs.POST("/:id/cancel", jobHandler.Cancel)

	return engine
}
