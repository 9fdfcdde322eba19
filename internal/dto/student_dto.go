package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// StudentCreateRequest describes the payload for registering a student.
type StudentCreateRequest struct {
	StudentID string `json:"student_id" validate:"required,min=1,max=64"`
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Major     string `json:"major" validate:"max=255"`
}

// StudentUpdateRequest describes the payload for updating a student.
type StudentUpdateRequest struct {
	StudentID *string `json:"student_id" validate:"omitempty,min=1,max=64"`
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Major     *string `json:"major" validate:"omitempty,max=255"`
}

// StudentResponse is the serialized representation returned to API clients.
type StudentResponse struct {
	ID        uint      `json:"id"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Major     string    `json:"major"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:        model.ID,
		StudentID: model.StudentID,
		Name:      model.Name,
		Major:     model.Major,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}

	return responses
}
