package uploadRoutes

import (
	controllers "jumly/controllers/upload"
	"jumly/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up the object storage passthrough route
func SetupUploadRoutes(app *fiber.App) {
	app.Post("/upload", middleware.JWTMiddleware, controllers.UploadFile)
}
