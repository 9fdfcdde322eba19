package models

import "time"

// AssessmentType labels the kind of assessment a grade belongs to.
type AssessmentType string

const (
	AssessmentMidterm      AssessmentType = "Midterm"
	AssessmentFinal        AssessmentType = "Final"
	AssessmentViva         AssessmentType = "Viva"
	AssessmentPresentation AssessmentType = "Presentation"
	AssessmentAssignment   AssessmentType = "Assignment"
)

// AssessmentTypes lists the recognised assessment labels.
func AssessmentTypes() []AssessmentType {
	return []AssessmentType{AssessmentMidterm, AssessmentFinal, AssessmentViva, AssessmentPresentation, AssessmentAssignment}
}

// Valid reports whether the assessment type is recognised.
func (a AssessmentType) Valid() bool {
	switch a {
	case AssessmentMidterm, AssessmentFinal, AssessmentViva, AssessmentPresentation, AssessmentAssignment:
		return true
	}
	return false
}

// GradeRecord stores a marks entry together with the grade point derived
// from it at write time. GradePoint is a snapshot: it is only recomputed
// when Marks is written, never on read, so a later change to the banding
// table leaves historical records untouched.
type GradeRecord struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	StudentID      string         `gorm:"size:64;not null;index" json:"student_id"`
	AssessmentType AssessmentType `gorm:"size:32;not null" json:"assessment_type"`
	Marks          float64        `gorm:"not null" json:"marks"`
	GradePoint     float64        `gorm:"not null" json:"grade_point"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
