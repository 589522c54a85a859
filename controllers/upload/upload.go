package uploadController

import (
	"io"

	"jumly/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadFile accepts a multipart upload and passes it through to the object
// storage zone. The stored key comes back in the url field.
func UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("attachment")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Attachment is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "File Upload Failed",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "File Upload Failed",
		})
	}

	key, err := utils.UploadToStorage(data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "File Upload Failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File Uploaded Successfully!",
		"url":     key,
	})
}
