package main

import (
	"log"

	"jumly/config"
	"jumly/database"
	authRoutes "jumly/routers/authRoutes"
	courseRoutes "jumly/routers/courseRoutes"
	uploadRoutes "jumly/routers/uploadRoutes"
	"jumly/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.FrontendURL + "," + config.AppConfig.BackendURL,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})

	authRoutes.SetupAuthRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	uploadRoutes.SetupUploadRoutes(app)

	// Nightly enrollment progress refresh
	scheduler := utils.InitializeProgressScheduler(db)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
