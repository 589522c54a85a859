package course

import "time"

// Progress marks a subsection as completed by a user. Composite primary key
// makes a second completion a no-op at the database level.
type Progress struct {
	UserID       string    `json:"userId" gorm:"primaryKey"`
	SubsectionID uint      `json:"subsectionId" gorm:"primaryKey"`
	CompletedAt  time.Time `json:"completedAt" gorm:"autoCreateTime"`
}
