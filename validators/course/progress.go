package courseValidator

import (
	"strings"

	"jumly/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProgressRequest is the parsed body for POST /progress
type ProgressRequest struct {
	UserID       string `json:"userId"`
	SubsectionID uint   `json:"subsectionId"`
}

// SaveProgress validates the subsection completion body
func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID and Subsection ID are required")
		}

		reqData.UserID = strings.TrimSpace(reqData.UserID)

		if reqData.UserID == "" || reqData.SubsectionID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID and Subsection ID are required")
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
