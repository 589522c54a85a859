package controllers

import (
	"jumly/middleware"
	courseModels "jumly/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseController serves the course read endpoints
type CourseController struct {
	Db *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{Db: db}
}

// SectionWithSubsections is a section carrying its nested subsections
type SectionWithSubsections struct {
	courseModels.Section
	Subsections []courseModels.Subsection `json:"subsections"`
}

// CourseTree is a course carrying its nested sections
type CourseTree struct {
	courseModels.Course
	Sections []SectionWithSubsections `json:"sections"`
}

// GetFullCourses returns the full tree (sections + subsections) for the
// requested course IDs
func (ctrl *CourseController) GetFullCourses(c *fiber.Ctx) error {
	courseIDs, ok := c.Locals("courseIDs").([]string)
	if !ok || len(courseIDs) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No course IDs provided")
	}

	trees, err := ctrl.fetchCourseTrees(courseIDs)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(trees) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "No courses found")
	}

	return c.JSON(trees)
}

// fetchCourseTrees assembles course trees in exactly three batched queries
// (courses, sections, subsections) regardless of how many IDs were asked
// for. The subsection query is skipped when no sections matched.
func (ctrl *CourseController) fetchCourseTrees(courseIDs []string) ([]CourseTree, error) {
	var courses []courseModels.Course
	if err := ctrl.Db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return []CourseTree{}, nil
	}

	matchedIDs := make([]string, len(courses))
	for i, course := range courses {
		matchedIDs[i] = course.ID
	}

	var sections []courseModels.Section
	if err := ctrl.Db.Where("course_id IN ?", matchedIDs).Order("order_index asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	var subsections []courseModels.Subsection
	if len(sections) > 0 {
		sectionIDs := make([]uint, len(sections))
		for i, section := range sections {
			sectionIDs[i] = section.ID
		}
		if err := ctrl.Db.Where("section_id IN ?", sectionIDs).Order("order_index asc").Find(&subsections).Error; err != nil {
			return nil, err
		}
	}

	// Group subsections by section, then sections by course
	subsBySection := make(map[uint][]courseModels.Subsection, len(sections))
	for _, subsection := range subsections {
		subsBySection[subsection.SectionID] = append(subsBySection[subsection.SectionID], subsection)
	}

	sectionsByCourse := make(map[string][]SectionWithSubsections, len(courses))
	for _, section := range sections {
		subs := subsBySection[section.ID]
		if subs == nil {
			subs = []courseModels.Subsection{}
		}
		sectionsByCourse[section.CourseID] = append(sectionsByCourse[section.CourseID], SectionWithSubsections{
			Section:     section,
			Subsections: subs,
		})
	}

	trees := make([]CourseTree, len(courses))
	for i, course := range courses {
		courseSections := sectionsByCourse[course.ID]
		if courseSections == nil {
			courseSections = []SectionWithSubsections{}
		}
		trees[i] = CourseTree{
			Course:   course,
			Sections: courseSections,
		}
	}

	return trees, nil
}

// GetAllCourses returns every course as a flat array
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses := []courseModels.Course{}
	if err := ctrl.Db.Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(courses)
}

// GetCourseByID returns an array of zero or one course rows
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Params("id")

	courses := []courseModels.Course{}
	if err := ctrl.Db.Where("id = ?", courseID).Limit(1).Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(courses)
}
