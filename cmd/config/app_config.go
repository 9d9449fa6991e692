package config

import (
	"os"
	"time"

	"freshtrack/internal/api/handlers"
	"freshtrack/internal/api/routes"
	"freshtrack/internal/middleware"
	"freshtrack/internal/utils"
	"freshtrack/internal/utils/storage"
	"freshtrack/pkg/analytics"
	"freshtrack/pkg/catalog"
	"freshtrack/pkg/food"
	"freshtrack/pkg/jwt"
	"freshtrack/pkg/midtrans"
	"freshtrack/pkg/retailer"
	"freshtrack/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	foodService := food.NewFoodService(foodRepository)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)
	catalogService := catalog.NewCatalogService()
	retailerService := retailer.NewRetailerService(foodService)
	midtransService := midtrans.NewMidtransService(midtransRepository, userService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	retailerHandler := handlers.NewRetailerHandler(retailerService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, userService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		AnalyticsHandler: analyticsHandler,
		CatalogHandler:   catalogHandler,
		RetailerHandler:  retailerHandler,
		MidtransHandler:  midtransHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
