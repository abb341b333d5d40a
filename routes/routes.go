package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bugtrail/handlers"
	"bugtrail/middleware"
	"bugtrail/store"
)

// Deps carries everything the router needs. Limiter is optional; tests leave
// it nil to skip rate limiting.
type Deps struct {
	Store        store.Store
	Log          *zap.Logger
	AllowOrigins []string
	Limiter      *middleware.RateLimiter
}

func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(middleware.Recovery(deps.Log))

	origins := deps.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if deps.Limiter != nil {
		router.Use(middleware.RateLimit(deps.Limiter))
	}
	router.Use(middleware.Auth())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	posts := handlers.NewPosts(deps.Store, deps.Log)
	bugs := handlers.NewBugs(deps.Store, deps.Log)

	api := router.Group("/api")

	api.POST("/posts", posts.Create)
	api.GET("/posts", posts.List)
	api.GET("/posts/:id", posts.Get)
	api.PUT("/posts/:id", posts.Update)
	api.DELETE("/posts/:id", posts.Delete)

	api.POST("/bugs", bugs.Create)
	api.GET("/bugs", bugs.List)
	api.GET("/bugs/:id", bugs.Get)
	api.PUT("/bugs/:id", bugs.Update)
	api.DELETE("/bugs/:id", bugs.Delete)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
