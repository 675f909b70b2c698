package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sudooom.mahjong.score/internal/config"
	"sudooom.mahjong.score/internal/handler"
	"sudooom.mahjong.score/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, scoreHandler *handler.ScoreHandler) *gin.Engine {
	gin.SetMode(cfg.App.Mode)

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(slog.Default().With("component", "http")))
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowCredentials,
	))

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.POST("/score", scoreHandler.Score)

		scores := v1.Group("/scores")
		{
			scores.GET("", scoreHandler.ListRecords)
			scores.GET("/:id", scoreHandler.GetRecord)
		}
	}

	return r
}
