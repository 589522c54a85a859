package utils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"jumly/models"
	courseModels "jumly/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

func setupSyncDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:synctest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Subsection{},
		&courseModels.Enrollment{},
		&courseModels.Progress{},
	))

	return db
}

func TestSyncEnrollmentProgress(t *testing.T) {
	db := setupSyncDB(t)

	require.NoError(t, db.Create(&models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}).Error)
	require.NoError(t, db.Create(&courseModels.Course{ID: "c1", Title: "Go", Instructor: "Rob"}).Error)

	section := courseModels.Section{CourseID: "c1", Title: "Intro", OrderIndex: 1}
	require.NoError(t, db.Create(&section).Error)

	subsections := make([]courseModels.Subsection, 4)
	for i := range subsections {
		subsections[i] = courseModels.Subsection{SectionID: section.ID, Title: fmt.Sprintf("Lesson %d", i+1), OrderIndex: i + 1}
		require.NoError(t, db.Create(&subsections[i]).Error)
	}

	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: "u1", CourseID: "c1"}).Error)
	require.NoError(t, db.Create(&courseModels.Progress{UserID: "u1", SubsectionID: subsections[0].ID}).Error)

	SyncEnrollmentProgress(db)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", "u1", "c1").First(&enrollment).Error)
	assert.InDelta(t, 25.0, enrollment.Progress, 0.001)

	// Completing the rest brings the column to 100
	for _, sub := range subsections[1:] {
		require.NoError(t, db.Create(&courseModels.Progress{UserID: "u1", SubsectionID: sub.ID}).Error)
	}
	SyncEnrollmentProgress(db)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", "u1", "c1").First(&enrollment).Error)
	assert.InDelta(t, 100.0, enrollment.Progress, 0.001)
}

func TestSyncEnrollmentProgressEmptyCourse(t *testing.T) {
	db := setupSyncDB(t)

	require.NoError(t, db.Create(&models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}).Error)
	require.NoError(t, db.Create(&courseModels.Course{ID: "bare", Title: "Empty", Instructor: "Rob"}).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: "u1", CourseID: "bare"}).Error)

	SyncEnrollmentProgress(db)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", "u1", "bare").First(&enrollment).Error)
	assert.Equal(t, float64(0), enrollment.Progress)
}
