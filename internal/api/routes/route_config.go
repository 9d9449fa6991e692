package routes

import (
	"freshtrack/internal/api/handlers"
	"freshtrack/internal/middleware"
	"freshtrack/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	AnalyticsHandler handlers.AnalyticsHandler
	CatalogHandler   handlers.CatalogHandler
	RetailerHandler  handlers.RetailerHandler
	MidtransHandler  handlers.MidtransHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Analytics()
	c.Catalog()
	c.Retailer()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTransaction)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Post("/:id/consume", c.FoodHandler.ConsumeFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))

	analytics.Get("/waste", c.AnalyticsHandler.GetWasteReport)
	analytics.Post("/snapshots", c.AnalyticsHandler.SaveSnapshot)
	analytics.Get("/snapshots", c.AnalyticsHandler.GetSnapshots)
}

func (c *Config) Catalog() {
	foods := c.App.Group("/api/v1/foods")

	foods.Get("/search", c.CatalogHandler.SearchFoods)
	foods.Get("/:name/expiry", c.CatalogHandler.GetFoodExpiry)
}

func (c *Config) Retailer() {
	walmart := c.App.Group("/api/v1/walmart", c.Middleware.AuthMiddleware(c.JWTService))

	walmart.Get("/search/:query", c.RetailerHandler.SearchProducts)
	walmart.Post("/purchase", c.RetailerHandler.AddPurchase)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
