package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deliverydb/gin-delivery-api/internal/auth"
	"github.com/deliverydb/gin-delivery-api/internal/config"
	"github.com/deliverydb/gin-delivery-api/internal/controllers"
	"github.com/deliverydb/gin-delivery-api/internal/database"
	"github.com/deliverydb/gin-delivery-api/internal/middleware"
	"github.com/deliverydb/gin-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                  *gorm.DB
	customerController  controllers.CustomerController
	orderController     controllers.OrderController
	dishController      controllers.DishController
	analyticsController controllers.AnalyticsController
	adminController     controllers.AdminController
	authController      controllers.AuthController
	configuration       *config.Config
)

// @title Delivery Data API
// @version 1.0
// @description Food-delivery entity store with derived analytics and dish recommendations
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection and schema
	setupDatabase(configuration)

	// Initialize services and controllers
	customerService := services.NewCustomerService(db)
	orderService := services.NewOrderService(db)
	dishService := services.NewDishService(db)
	ratingService := services.NewRatingService(db)
	analyticsService := services.NewAnalyticsService(db)
	recommendationService := services.NewRecommendationService(db)
	tokenService := auth.NewTokenService(configuration.JWTSecret, configuration.OperatorPasswordHash)

	customerController = controllers.NewCustomerController(customerService, ratingService)
	orderController = controllers.NewOrderController(orderService)
	dishController = controllers.NewDishController(dishService)
	analyticsController = controllers.NewAnalyticsController(analyticsService, recommendationService)
	adminController = controllers.NewAdminController(db)
	authController = controllers.NewAuthController(tokenService)

	// Initialize Gin router
	router := setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
}

// setupRouter initializes the Gin router and sets up the routes
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID(), middleware.Metrics())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check and operational endpoints
	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", middleware.MetricsHandler())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/token", authController.IssueToken)

		customers := v1.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("/:id", customerController.GetCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
			customers.POST("/:id/ratings", customerController.RateDish)
			customers.GET("/:id/ratings", customerController.ListRatings)
			customers.DELETE("/:id/ratings/:dishId", customerController.DeleteRating)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("/:id", orderController.GetOrder)
			orders.DELETE("/:id", orderController.DeleteOrder)
			orders.PUT("/:id/customer", orderController.PlaceOrder)
			orders.GET("/:id/customer", orderController.GetPlacingCustomer)
			orders.DELETE("/:id/customer", orderController.RemovePlacement)
			orders.POST("/:id/items", orderController.AddOrderItem)
			orders.GET("/:id/items", orderController.ListOrderItems)
			orders.DELETE("/:id/items/:dishId", orderController.RemoveOrderItem)
		}

		dishes := v1.Group("/dishes")
		{
			dishes.POST("", dishController.CreateDish)
			dishes.GET("/:id", dishController.GetDish)
			dishes.DELETE("/:id", dishController.DeleteDish)
			dishes.PUT("/:id/price", dishController.UpdateDishPrice)
			dishes.PUT("/:id/active", dishController.UpdateDishActiveStatus)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/orders/:id/total", analyticsController.GetOrderTotal)
			analytics.GET("/dishes/ratings", analyticsController.GetDishAverageRatings)
			analytics.GET("/dishes/sales-figures", analyticsController.GetDishSalesFigures)
			analytics.GET("/dishes/most-purchased-anonymous", analyticsController.GetMostPurchasedAnonymousDish)
			analytics.GET("/dishes/non-worth-price-increase", analyticsController.GetNonWorthPriceIncrease)
			analytics.GET("/customers/max-average-spenders", analyticsController.GetMaxAverageSpenders)
			analytics.GET("/customers/rated-but-not-ordered", analyticsController.GetRatedButNotOrdered)
			analytics.GET("/customers/:id/ordered-top-rated", analyticsController.GetCustomerOrderedTopRatedDish)
			analytics.GET("/customers/:id/recommendations", analyticsController.GetRecommendations)
			analytics.GET("/profit/:year", analyticsController.GetCumulativeProfitPerMonth)
		}

		// Schema lifecycle is destructive; operator token required
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth())
		{
			admin.POST("/schema", adminController.CreateSchema)
			admin.DELETE("/schema/data", adminController.ClearData)
			admin.DELETE("/schema", adminController.DropSchema)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-delivery-api",
	})
}
