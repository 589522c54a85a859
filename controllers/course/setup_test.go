package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"jumly/database"
	"jumly/models"
	courseModels "jumly/models/course"
	courseRoutes "jumly/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

// setupTestDB opens a fresh in-memory SQLite database with the production
// schema. Each call gets its own named memory database so tests never share
// state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:coursetest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	return db
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, db)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedUser(t *testing.T, db *gorm.DB, id string) models.User {
	t.Helper()

	user := models.User{
		ID:    id,
		Name:  "Test User " + id,
		Email: id + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, id string) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		ID:         id,
		Title:      "Course " + id,
		Instructor: "Instructor " + id,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedSection(t *testing.T, db *gorm.DB, courseID, title string, orderIndex int) courseModels.Section {
	t.Helper()

	section := courseModels.Section{
		CourseID:   courseID,
		Title:      title,
		OrderIndex: orderIndex,
	}
	require.NoError(t, db.Create(&section).Error)
	return section
}

func seedSubsection(t *testing.T, db *gorm.DB, sectionID uint, title string, orderIndex int) courseModels.Subsection {
	t.Helper()

	subsection := courseModels.Subsection{
		SectionID:  sectionID,
		Title:      title,
		OrderIndex: orderIndex,
	}
	require.NoError(t, db.Create(&subsection).Error)
	return subsection
}
