package api

import (
	"github.com/gin-gonic/gin"
	"github.com/iamvkosarev/replyme/internal/api/handlers"
	"github.com/iamvkosarev/replyme/internal/api/middleware"
	"github.com/iamvkosarev/replyme/internal/usecase"
)

type RouterDeps struct {
	History        *usecase.HistoryUsecase
	User           *usecase.UserUsecase
	Counter        handlers.TokenCounter
	JWTSecret      string
	MaxInputTokens int
}

func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Recovery must run first to catch panics re-raised by the Sentry middleware
	router.Use(middleware.RecoverWithSentry())
	router.Use(middleware.SentryMiddleware())
	router.Use(middleware.RequestTracking())
	router.Use(middleware.CORS())

	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.HealthCheck)

	public := router.Group("/api")
	{
		public.GET("/tones", handlers.ListTones)
		public.GET("/templates", handlers.ListTemplates)
	}

	owned := router.Group("/api")
	owned.Use(middleware.OwnerAuth(deps.JWTSecret))
	{
		generationHandler := handlers.NewGenerationHandler(deps.History, deps.Counter, deps.MaxInputTokens)
		owned.POST("/generate", generationHandler.Generate)
		owned.POST("/templates/:id/generate", generationHandler.GenerateFromTemplate)

		historyHandler := handlers.NewHistoryHandler(deps.History)
		owned.GET("/history", historyHandler.List)
		owned.DELETE("/history", historyHandler.Clear)
		owned.GET("/history/:id", historyHandler.Get)
		owned.POST("/history/:id/favorite", historyHandler.ToggleFavorite)
		owned.DELETE("/history/:id", historyHandler.Delete)
	}

	account := router.Group("/api")
	account.Use(middleware.OwnerAuth(deps.JWTSecret), middleware.UserRequired())
	{
		userHandler := handlers.NewUserHandler(deps.User)
		account.GET("/profile", userHandler.GetProfile)
		account.PUT("/profile", userHandler.UpdateProfile)
		account.GET("/settings", userHandler.GetSettings)
		account.PUT("/settings", userHandler.UpdateSettings)
	}

	return router
}
