package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/handler"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	customerHandler *handler.CustomerHandler,
	transactionHandler *handler.TransactionHandler,
	paymentHandler *handler.PaymentHandler,
	analyticsHandler *handler.AnalyticsHandler,
) {
	api := router.Group("/api/v1")
	{
		customers := api.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("/:id", customerHandler.Get)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.GET("/:id", transactionHandler.Get)
			transactions.POST("/:id/cancel", transactionHandler.Cancel)
			transactions.GET("/:id/payment", transactionHandler.GetPayment)
		}

		payments := api.Group("/payments")
		{
			payments.POST("", paymentHandler.Make)
			payments.GET("/:id", paymentHandler.Get)
			payments.POST("/:id/retry", paymentHandler.Retry)
			payments.POST("/:id/fail", paymentHandler.MarkFailed)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/spend-summary", analyticsHandler.SpendSummary)
			analytics.GET("/spend-by-category", analyticsHandler.SpendByCategory)
			analytics.GET("/time-series", analyticsHandler.TimeSeries)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API. The redis
// client is optional; when nil the idempotency response cache is skipped.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, redisClient *redis.Client) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	if redisClient != nil {
		router.Use(middleware.Idempotency(redisClient, logger))
	}
}
