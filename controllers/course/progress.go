package controllers

import (
	"errors"

	"jumly/middleware"
	courseModels "jumly/models/course"
	courseValidator "jumly/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgressController records subsection completions and reports per-course
// completion percentages
type ProgressController struct {
	Db *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{Db: db}
}

// SaveProgress marks a subsection as completed for a user. Repeating the
// call is not an error; the second request gets a 200 with a message.
func (ctrl *ProgressController) SaveProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "User ID and Subsection ID are required")
	}

	// Check if subsection exists
	var subsection courseModels.Subsection
	if err := ctrl.Db.Where("id = ?", reqData.SubsectionID).First(&subsection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Subsection not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	// Conditional insert: the composite primary key turns a repeat
	// completion into a duplicate-key error, which we report as success.
	progress := courseModels.Progress{
		UserID:       reqData.UserID,
		SubsectionID: reqData.SubsectionID,
	}
	if err := ctrl.Db.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.MessageResponse(c, fiber.StatusOK, "Already marked as completed")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(progress)
}

// GetCourseProgress computes the user's completion percentage for a course
func (ctrl *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID := c.Params("userId")
	courseID := c.Params("courseId")

	summary, err := computeCourseProgress(ctrl.Db, userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(summary)
}

// ProgressSummary is the course progress report for a single user
type ProgressSummary struct {
	CourseID         string `json:"courseId"`
	TotalSubsections int    `json:"totalSubsections"`
	Completed        int    `json:"completed"`
	ProgressPercent  int    `json:"progressPercent"`
}

// computeCourseProgress counts completed subsections against the course's
// full subsection set. The percentage is truncated, not rounded: 1 of 3
// completed reports 33.
func computeCourseProgress(db *gorm.DB, userID, courseID string) (*ProgressSummary, error) {
	var sectionIDs []uint
	if err := db.Model(&courseModels.Section{}).Where("course_id = ?", courseID).Pluck("id", &sectionIDs).Error; err != nil {
		return nil, err
	}

	var subsectionIDs []uint
	if len(sectionIDs) > 0 {
		if err := db.Model(&courseModels.Subsection{}).Where("section_id IN ?", sectionIDs).Pluck("id", &subsectionIDs).Error; err != nil {
			return nil, err
		}
	}

	total := len(subsectionIDs)

	var completed int64
	if total > 0 {
		if err := db.Model(&courseModels.Progress{}).
			Where("user_id = ? AND subsection_id IN ?", userID, subsectionIDs).
			Count(&completed).Error; err != nil {
			return nil, err
		}
	}

	percent := 0
	if total > 0 {
		percent = int(completed) * 100 / total
	}

	return &ProgressSummary{
		CourseID:         courseID,
		TotalSubsections: total,
		Completed:        int(completed),
		ProgressPercent:  percent,
	}, nil
}
