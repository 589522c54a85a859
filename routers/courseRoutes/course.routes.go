package courseRoutes

import (
	controllers "jumly/controllers/course"
	validators "jumly/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up the course, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	courseCtrl := controllers.NewCourseController(db)
	enrollCtrl := controllers.NewEnrollmentController(db)
	progressCtrl := controllers.NewProgressController(db)

	// Course reads. /course/full must be registered before /course/:id so
	// the literal segment wins.
	app.Get("/course/full", validators.FullCourseQuery(), courseCtrl.GetFullCourses)
	app.Get("/courses", courseCtrl.GetAllCourses)
	app.Get("/course/:id", courseCtrl.GetCourseByID)

	// Enrollment
	app.Post("/enrollments", validators.EnrollUser(), enrollCtrl.EnrollUser)
	app.Get("/user/:userId/enrollments", enrollCtrl.GetUserEnrollments)
	app.Post("/enrollments/list", validators.EnrollmentList(), enrollCtrl.ListEnrollments)

	// Progress tracking
	app.Post("/progress", validators.SaveProgress(), progressCtrl.SaveProgress)
	app.Get("/user/:userId/course/:courseId/progress", progressCtrl.GetCourseProgress)
}
