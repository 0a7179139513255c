// Package server assembles services, dashboard sessions and handlers into
// the HTTP application.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"minify/internal/config"
	"minify/internal/dashboard"
	"minify/internal/events"
	"minify/internal/handlers"
	"minify/internal/middleware"
	"minify/internal/models"
	"minify/internal/refdata"
	"minify/internal/services"
)

// Deps carries the collaborators the application is built from. Publisher
// and Now are optional.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Refdata   *refdata.Data
	Publisher events.Publisher
	Now       func() time.Time
}

// App is the assembled application.
type App struct {
	Router   *gin.Engine
	Sessions *dashboard.Registry
	Rates    services.ExchangeRateServicer
}

// New wires every service and handler and registers the routes.
func New(deps Deps) *App {
	cfg := deps.Config
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.LogPublisher{}
	}

	userService := services.NewUserService(deps.DB)
	categoryService := services.NewCategoryService(deps.DB)
	transactionService := services.NewTransactionService(deps.DB)
	subscriptionService := services.NewSubscriptionService(deps.DB)
	rateService := services.NewExchangeRateService(deps.DB)
	analyticsService := services.NewAnalyticsService(deps.DB)
	auditService := services.NewAuditService(deps.DB)
	chatService := services.NewChatService(deps.DB)

	defaultCurrency := models.CurrencyCode(cfg.DefaultCurrency)
	build := func(ctx context.Context, userID string) (*dashboard.Store, error) {
		user, err := userService.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		currency := user.BaseCurrency
		if !currency.Valid() {
			currency = defaultCurrency
		}
		return dashboard.NewStore(userID, currency, dashboard.Deps{
			Transactions:  transactionService,
			Subscriptions: subscriptionService,
			Categories:    categoryService,
			Rates:         rateService,
			Chat:          chatService,
			Presets:       deps.Refdata.PresetList(),
			Events:        publisher,
			Location:      cfg.Timezone,
			Now:           deps.Now,
		}), nil
	}
	sessions := dashboard.NewRegistry(cfg.SessionTTL, build)

	authHandler := handlers.NewAuthHandler(userService, categoryService, auditService, sessions, deps.Refdata.Categories)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService, sessions)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService, sessions, cfg.Timezone)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, auditService, sessions, cfg.Timezone)
	rateHandler := handlers.NewExchangeRateHandler(rateService, auditService, sessions, publisher)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, cfg.Timezone)
	dashboardHandler := handlers.NewDashboardHandler(sessions)
	adminHandler := handlers.NewAdminHandler(userService, auditService, sessions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Pipeline routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.POST("/exchange-rates", rateHandler.IngestExchangeRates)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.PATCH("/profile", authHandler.UpdateProfile)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	subscriptions := protected.Group("/subscriptions")
	subscriptions.POST("", subscriptionHandler.CreateSubscription)
	subscriptions.GET("", subscriptionHandler.GetUserSubscriptions)
	subscriptions.GET("/:id", subscriptionHandler.GetSubscriptionByID)
	subscriptions.GET("/:id/forecast", subscriptionHandler.GetOccurrences)
	subscriptions.PATCH("/:id", subscriptionHandler.UpdateSubscription)
	subscriptions.POST("/:id/toggle", subscriptionHandler.ToggleSubscription)
	subscriptions.DELETE("/:id", subscriptionHandler.DeleteSubscription)

	rates := protected.Group("/exchange-rates")
	rates.GET("", rateHandler.GetExchangeRates)
	rates.GET("/latest", rateHandler.GetLatestRate)

	analytics := protected.Group("/analytics")
	analytics.GET("/daily", analyticsHandler.GetDailyTotals)
	analytics.GET("/category-sum", analyticsHandler.GetCategoryTotals)
	analytics.GET("/subscriptions-overview", analyticsHandler.GetSubscriptionsOverview)

	board := protected.Group("/dashboard")
	board.GET("", dashboardHandler.GetDashboard)
	board.GET("/summary", dashboardHandler.GetSummary)
	board.POST("/reload", dashboardHandler.Reload)
	board.PUT("/month", dashboardHandler.SetMonth)
	board.PUT("/currency", dashboardHandler.SetCurrency)
	board.GET("/forecast", dashboardHandler.Forecast)
	board.POST("/convert", dashboardHandler.Convert)
	board.GET("/presets", dashboardHandler.ListPresets)
	board.POST("/presets/:id/apply", dashboardHandler.ApplyPreset)
	board.GET("/chat", dashboardHandler.GetChat)
	board.POST("/chat", dashboardHandler.SendChat)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(models.UserRoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.POST("/exchange-rates", rateHandler.CreateExchangeRates)

	return &App{Router: router, Sessions: sessions, Rates: rateService}
}
