package main

import (
	"crm/blacklist"
	"crm/config"
	"crm/database"
	adminRoutes "crm/routers/adminRoutes"
	authRoutes "crm/routers/authRoutes"
	paymentRoutes "crm/routers/paymentRoutes"
	queryRoutes "crm/routers/queryRoutes"
	userRoutes "crm/routers/userRoutes"
	"crm/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Single-instance deployments keep revocations in process memory;
	// setting REDIS_ADDR shares the set across instances.
	var store blacklist.Store = blacklist.NewMemoryStore()
	if config.AppConfig.RedisAddr != "" {
		store = blacklist.NewRedisStore(config.AppConfig.RedisAddr, blacklist.RedisEntryTTL)
		log.Printf("Token blacklist backed by redis at %s", config.AppConfig.RedisAddr)
	}

	utils.InitializeOTPScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is up and running!")
	})

	authRoutes.SetupAuthRoutes(app, store)
	adminRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app, store)
	queryRoutes.SetupQueryRoutes(app, store)
	paymentRoutes.SetupPaymentRoutes(app, store)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
