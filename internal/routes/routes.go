package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tradux-portal/internal/controllers"
	"tradux-portal/internal/repositories"
	"tradux-portal/internal/services"
	"tradux-portal/pkg/config"
	"tradux-portal/pkg/middleware"
	"tradux-portal/pkg/service"
)

func InitRouter(e *echo.Echo, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- repositories ---
	backendRepo := repositories.NewBackendRepository(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- services ---
	orderService := services.NewOrderService(backendRepo, logger)
	watcher := services.NewOrderWatcher(backendRepo, cfg.Poll.Interval, logger)
	reviewService := services.NewReviewService(backendRepo, logger)
	pricingService := services.NewPricingService(cacheRepo, cfg.Rates.SourceURL, cfg.Rates.CacheTTL, logger)
	authService := services.NewAuthService(cfg.Admin, jwtSvc, logger)

	// --- controllers ---
	authController := controllers.NewAuthController(authService, logger)
	orderController := controllers.NewOrderController(orderService, watcher, logger)
	reviewController := controllers.NewReviewController(reviewService, logger)
	wizardController := controllers.NewWizardController(backendRepo, pricingService, logger)
	enterpriseController := controllers.NewEnterpriseController(backendRepo, pricingService, logger)
	reportController := controllers.NewReportController(orderService, logger)

	// --- public ---
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "tradux-portal"})
	})

	api.POST("/auth/login", authController.Login)
	api.POST("/auth/refresh", authController.Refresh)

	// Order wizard (consumer landing)
	wizard := api.Group("/orders/wizard")
	wizard.POST("/documents", wizardController.UploadDocument)
	wizard.POST("/estimate", wizardController.Estimate)
	wizard.POST("/quote", wizardController.CalculateQuote)
	wizard.POST("/checkout", wizardController.CreateCheckout)

	// Enterprise landing
	enterprise := api.Group("/enterprise")
	enterprise.POST("/roi", enterpriseController.CalculateROI)
	enterprise.POST("/leads", enterpriseController.SubmitLead)

	// Client review page (token-guarded by the backend)
	api.GET("/review/:id", reviewController.GetReview)
	api.POST("/review/:id", reviewController.SubmitReview)

	// --- admin dashboard ---
	admin := api.Group("/admin", authMW.Auth)
	admin.GET("/orders", orderController.ListOrders)
	admin.GET("/orders/export", reportController.ExportOrders)
	admin.GET("/orders/:id", orderController.GetOrder)
	admin.GET("/orders/:id/watch", orderController.WatchOrder)
	admin.GET("/orders/:id/document-text", orderController.GetDocumentTexts)
	admin.POST("/orders/:id/actions", orderController.DispatchAction)
	admin.POST("/orders/:id/upload-translation", orderController.UploadPMTranslation)
	admin.GET("/orders/:id/download-translation", orderController.DownloadPMTranslation)
	admin.POST("/orders/:id/translation", orderController.UpdateTranslation)
	admin.GET("/stats", orderController.GetStats)

	logger.Info("routes initialized")
}
