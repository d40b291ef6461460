package http

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	appsvc "versenotes/internal/app"
	"versenotes/internal/bootstrap"
	"versenotes/internal/logging"
	"versenotes/internal/metrics"
	"versenotes/internal/repository"
	"versenotes/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		logging.GinMiddleware(),
		metrics.GinMiddleware(),
		cors.New(corsConfig(app.Config.CORS.AllowOrigins)),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
	)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	highlightRepo := repository.NewHighlightRepository(app.DB)

	authService := appsvc.NewAuthService(userRepo, app.Events, app.Config.Auth.BcryptCost)
	postService := appsvc.NewPostService(postRepo, app.Events)
	highlightService := appsvc.NewHighlightService(highlightRepo, app.Policy, app.Events)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	highlightHandler := handler.NewHighlightHandler(highlightService)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.GET("/ready", healthHandler.Ready)

	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	api.POST("/posts", postHandler.Create)
	api.GET("/posts", postHandler.List)

	api.POST("/highlights", highlightHandler.Create)
	api.GET("/highlights/:userId", highlightHandler.ListByUser)
	api.DELETE("/highlights/:highlightId", highlightHandler.Delete)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
