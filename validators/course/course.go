package courseValidator

import (
	"strings"

	"jumly/middleware"

	"github.com/gofiber/fiber/v2"
)

// FullCourseQuery parses the comma-separated ids query parameter for the
// full-course-tree endpoint and stores the cleaned list in locals.
func FullCourseQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idsParam := c.Query("ids")
		if idsParam == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No course IDs provided")
		}

		// Trim entries and drop blanks ("a,,b" and trailing commas are fine)
		parts := strings.Split(idsParam, ",")
		courseIDs := make([]string, 0, len(parts))
		for _, p := range parts {
			if id := strings.TrimSpace(p); id != "" {
				courseIDs = append(courseIDs, id)
			}
		}

		if len(courseIDs) == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No valid course IDs found")
		}

		c.Locals("courseIDs", courseIDs)
		return c.Next()
	}
}
