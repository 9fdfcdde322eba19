package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// GradeEntryRequest describes the payload for recording a marks entry.
// The grade point is derived server-side from the marks; clients never
// supply it.
type GradeEntryRequest struct {
	StudentID      string  `json:"student_id" validate:"required,min=1,max=64"`
	AssessmentType string  `json:"assessment_type" validate:"required"`
	Marks          float64 `json:"marks" validate:"gte=0,lte=100"`
}

// GradeRecordResponse is the serialized representation returned to API clients.
type GradeRecordResponse struct {
	ID             uint      `json:"id"`
	StudentID      string    `json:"student_id"`
	AssessmentType string    `json:"assessment_type"`
	Marks          float64   `json:"marks"`
	GradePoint     float64   `json:"grade_point"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GPASummaryRow reports one student's overall GPA.
type GPASummaryRow struct {
	StudentID  string  `json:"student_id"`
	Name       string  `json:"name"`
	OverallGPA float64 `json:"overall_gpa"`
}

// NewGradeRecordResponse converts a model into a DTO.
func NewGradeRecordResponse(model models.GradeRecord) GradeRecordResponse {
	return GradeRecordResponse{
		ID:             model.ID,
		StudentID:      model.StudentID,
		AssessmentType: string(model.AssessmentType),
		Marks:          model.Marks,
		GradePoint:     model.GradePoint,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

// NewGradeRecordResponseSlice converts a slice of models into DTOs.
func NewGradeRecordResponseSlice(records []models.GradeRecord) []GradeRecordResponse {
	responses := make([]GradeRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewGradeRecordResponse(record))
	}

	return responses
}
