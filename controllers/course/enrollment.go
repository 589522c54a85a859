package controllers

import (
	"errors"

	"jumly/middleware"
	"jumly/models"
	courseModels "jumly/models/course"
	courseValidator "jumly/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollmentController serves enrollment creation and listing
type EnrollmentController struct {
	Db *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{Db: db}
}

// EnrollUser enrolls a user in a course
func (ctrl *EnrollmentController) EnrollUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*courseValidator.EnrollmentRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID and Course ID are required")
	}

	// Check if user exists
	var user models.User
	if err := ctrl.Db.Where("id = ?", reqData.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	// Check if course exists
	var course courseModels.Course
	if err := ctrl.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	// Insert directly and let the composite primary key reject duplicates.
	// Two concurrent identical requests both reach this point; the loser
	// gets a duplicate-key error, never a second row.
	enrollment := courseModels.Enrollment{
		UserID:   reqData.UserID,
		CourseID: reqData.CourseID,
	}
	if err := ctrl.Db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Already enrolled in this course")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// GetUserEnrollments returns all enrollments for the user in the path.
// Unknown users simply get an empty array.
func (ctrl *EnrollmentController) GetUserEnrollments(c *fiber.Ctx) error {
	userID := c.Params("userId")

	enrollments := []courseModels.Enrollment{}
	if err := ctrl.Db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(enrollments)
}

// ListEnrollments is the POST body variant of GetUserEnrollments
func (ctrl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("listUserId").(string)
	if !ok || userID == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID is required")
	}

	enrollments := []courseModels.Enrollment{}
	if err := ctrl.Db.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(enrollments)
}
