package utils

import (
	"log"

	courseModels "jumly/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SyncEnrollmentProgress refreshes the denormalized progress column on every
// enrollment from the progress rows. The read path always recomputes on
// demand; this column exists for reporting queries that only touch the
// enrollments table.
func SyncEnrollmentProgress(db *gorm.DB) {
	var enrollments []courseModels.Enrollment
	if err := db.Find(&enrollments).Error; err != nil {
		log.Printf("Progress sync: failed to fetch enrollments: %v", err)
		return
	}

	// Subsection sets are cached per course so each course is resolved once
	subsByCourse := make(map[string][]uint)
	updated := 0

	for _, enrollment := range enrollments {
		subsectionIDs, ok := subsByCourse[enrollment.CourseID]
		if !ok {
			var sectionIDs []uint
			if err := db.Model(&courseModels.Section{}).Where("course_id = ?", enrollment.CourseID).Pluck("id", &sectionIDs).Error; err != nil {
				log.Printf("Progress sync: failed to fetch sections for course %s: %v", enrollment.CourseID, err)
				continue
			}
			if len(sectionIDs) > 0 {
				if err := db.Model(&courseModels.Subsection{}).Where("section_id IN ?", sectionIDs).Pluck("id", &subsectionIDs).Error; err != nil {
					log.Printf("Progress sync: failed to fetch subsections for course %s: %v", enrollment.CourseID, err)
					continue
				}
			}
			subsByCourse[enrollment.CourseID] = subsectionIDs
		}

		total := len(subsectionIDs)
		percent := float64(0)
		if total > 0 {
			var completed int64
			if err := db.Model(&courseModels.Progress{}).
				Where("user_id = ? AND subsection_id IN ?", enrollment.UserID, subsectionIDs).
				Count(&completed).Error; err != nil {
				log.Printf("Progress sync: failed to count progress for user %s: %v", enrollment.UserID, err)
				continue
			}
			percent = float64(completed) / float64(total) * 100
		}

		if percent == enrollment.Progress {
			continue
		}

		if err := db.Model(&courseModels.Enrollment{}).
			Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
			Update("progress", percent).Error; err != nil {
			log.Printf("Progress sync: failed to update enrollment (%s, %s): %v", enrollment.UserID, enrollment.CourseID, err)
			continue
		}
		updated++
	}

	log.Printf("Progress sync: refreshed %d of %d enrollments", updated, len(enrollments))
}

// InitializeProgressScheduler starts the nightly enrollment progress sync
func InitializeProgressScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	// 02:30 every night, after the day's completions have settled
	if _, err := c.AddFunc("30 2 * * *", func() {
		SyncEnrollmentProgress(db)
	}); err != nil {
		log.Printf("Failed to schedule progress sync: %v", err)
		return c
	}

	c.Start()
	log.Println("Progress sync scheduler started.")
	return c
}
