package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mergington/activity-registry/internal/di"
	"github.com/mergington/activity-registry/pkg/middleware"
)

// New builds the gin engine with all middleware and routes registered
func New(c *di.Container) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.CORS())

	engine.GET("/", c.ActivityHandler.Root)
	engine.GET("/health", c.HealthHandler.Health)

	engine.GET("/activities", c.ActivityHandler.List)
	engine.POST("/activities/:name/signup", c.ActivityHandler.Signup)
	engine.DELETE("/activities/:name/unregister", c.ActivityHandler.Unregister)

	return engine
}
