package course

import "time"

// Enrollment ties a user to a course. The composite primary key is what
// guarantees at most one enrollment per (user, course) pair; concurrent
// duplicate requests are rejected by the database, not by application checks.
type Enrollment struct {
	UserID     string    `json:"userId" gorm:"primaryKey"`
	CourseID   string    `json:"courseId" gorm:"primaryKey"`
	EnrolledAt time.Time `json:"enrolledAt" gorm:"autoCreateTime"`
	Progress   float64   `json:"progress" gorm:"default:0"` // refreshed by the sync job, see utils/progressScheduler.go
}
