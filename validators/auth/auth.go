package authValidator

import (
	"strings"

	"jumly/middleware"

	"github.com/gofiber/fiber/v2"
)

// SignupRequest is the parsed body for POST /auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the parsed body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates the signup body
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if reqData.Name == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Name is required")
		}
		if reqData.Email == "" || !strings.Contains(reqData.Email, "@") {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "A valid email is required")
		}
		if len(reqData.Password) < 8 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at least 8 characters long")
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validates the login body
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

		if reqData.Email == "" || reqData.Password == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
