package courseValidator

import (
	"strings"

	"jumly/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentRequest is the parsed body for POST /enrollments
type EnrollmentRequest struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
}

// EnrollUser validates the enrollment creation body
func EnrollUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID and Course ID are required")
		}

		reqData.UserID = strings.TrimSpace(reqData.UserID)
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)

		if reqData.UserID == "" || reqData.CourseID == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID and Course ID are required")
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// EnrollmentList validates the body for POST /enrollments/list
func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID string `json:"userId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID is required")
		}

		userID := strings.TrimSpace(reqData.UserID)
		if userID == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID is required")
		}

		c.Locals("listUserId", userID)
		return c.Next()
	}
}
