package course

import "time"

// Course is the root of a course tree
type Course struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Instructor   string    `json:"instructor" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoURL     string    `json:"videoUrl"`
	Duration     string    `json:"duration"` // display label, e.g. "4h 30m"
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Sections []Section `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
