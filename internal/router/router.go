package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studyzap/studyzap-backend/internal/config"
	"github.com/studyzap/studyzap-backend/internal/handler"
	"github.com/studyzap/studyzap-backend/internal/middleware"
	"github.com/studyzap/studyzap-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Module     *handler.ModuleHandler
	Paper      *handler.PaperHandler
	Session    *handler.SessionHandler
	Material   *handler.MaterialHandler
	Generation *handler.GenerationHandler
	Result     *handler.ResultHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve uploaded study materials statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for upload and generation routes (20 requests per minute per IP).
	heavyLimiter := middleware.NewRateLimiter(20, time.Minute)

	api := router.Group("/api/v1")
	{
		// Modules
		api.GET("/modules", handlers.Module.List)
		api.POST("/modules", handlers.Module.Create)
		api.GET("/modules/:module_id", handlers.Module.Get)

		// Papers
		api.GET("/papers/:paper_id", handlers.Paper.Get)
		api.POST("/papers/:paper_id/sessions", handlers.Session.Open)

		// Quiz sessions
		sessions := api.Group("/sessions")
		{
			sessions.GET("/:session_id", handlers.Session.Get)
			sessions.POST("/:session_id/answer", handlers.Session.SelectAnswer)
			sessions.POST("/:session_id/goto", handlers.Session.GoTo)
			sessions.POST("/:session_id/next", handlers.Session.Next)
			sessions.POST("/:session_id/previous", handlers.Session.Previous)
			sessions.POST("/:session_id/submit", handlers.Session.Submit)
			sessions.GET("/:session_id/result", handlers.Session.Result)
			sessions.POST("/:session_id/reset", handlers.Session.Reset)
			sessions.DELETE("/:session_id", handlers.Session.Close)
		}

		// Results export
		api.GET("/results", handlers.Result.List)

		// Materials and paper generation
		api.POST("/materials", heavyLimiter.Middleware(), handlers.Material.Upload)
		api.POST("/generations", heavyLimiter.Middleware(), handlers.Generation.Create)
		api.GET("/generations/:job_id", handlers.Generation.Get)
	}

	return router
}
