package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"osvita-admin/internal/handlers"
)

type RouterConfig struct {
	ScheduleHandler *handlers.ScheduleHandler
	GroupHandler    *handlers.GroupHandler
	AllowedOrigins  []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/schedule/generate-all", cfg.ScheduleHandler.GenerateAll)
		api.GET("/schedule", cfg.ScheduleHandler.GetSchedule)
		api.GET("/schedule/week-image", cfg.ScheduleHandler.WeekImage)
		api.GET("/groups", cfg.GroupHandler.List)
	}

	return router
}
