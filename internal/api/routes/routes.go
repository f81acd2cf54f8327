package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/edummoreno/healthcare-mini-mvp/internal/api/handlers"
	middlewares "github.com/edummoreno/healthcare-mini-mvp/internal/middleware"
	"github.com/edummoreno/healthcare-mini-mvp/internal/services"
)

func SetupRouter(service *services.SuggestService) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())

	suggestHandler := handlers.NewSuggestHandler(service)
	rulesetHandler := handlers.NewRulesetHandler(service)
	healthHandler := handlers.NewHealthHandler(service)

	api := r.Group("/api/v1")
	{
		api.POST("/sugerir", suggestHandler.Suggest)
		api.GET("/especialidades", rulesetHandler.ListSpecialties)
		api.GET("/ruleset", rulesetHandler.GetMeta)

		admin := api.Group("/admin")
		{
			admin.POST("/ruleset/reload", rulesetHandler.Reload)
		}
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
