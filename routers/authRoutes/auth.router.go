package authRoutes

import (
	controllers "jumly/controllers/auth"
	"jumly/middleware"
	validators "jumly/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up the signup/login/profile routes
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controllers.NewAuthController(db)

	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), authCtrl.Signup)
	authGroup.Post("/login", validators.Login(), authCtrl.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authCtrl.Me)
}
