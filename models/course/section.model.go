package course

// Section is a top-level chapter within a course. Siblings are displayed in
// order_index ascending order; the schema allows gaps and duplicates.
type Section struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	CourseID   string `json:"courseId" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"orderIndex" gorm:"not null"`

	Subsections []Subsection `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// Subsection is a single lesson within a section
type Subsection struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	SectionID  uint   `json:"sectionId" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	Duration   string `json:"duration"`
	Content    string `json:"content" gorm:"type:text"`
	VideoURL   string `json:"videoUrl"`
	OrderIndex int    `json:"orderIndex" gorm:"not null"`
}
