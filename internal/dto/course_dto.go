package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// CourseCreateRequest describes the payload for adding a catalog course.
type CourseCreateRequest struct {
	CourseCode    string  `json:"course_code" validate:"required,min=1,max=64"`
	CourseName    string  `json:"course_name" validate:"required,min=1,max=255"`
	Program       string  `json:"program" validate:"max=255"`
	Credits       float64 `json:"credits" validate:"gte=0"`
	Prerequisites string  `json:"prerequisites"`
}

// CourseUpdateRequest describes the payload for updating a course.
type CourseUpdateRequest struct {
	CourseCode    *string  `json:"course_code" validate:"omitempty,min=1,max=64"`
	CourseName    *string  `json:"course_name" validate:"omitempty,min=1,max=255"`
	Program       *string  `json:"program" validate:"omitempty,max=255"`
	Credits       *float64 `json:"credits" validate:"omitempty,gte=0"`
	Prerequisites *string  `json:"prerequisites"`
}

// CourseResponse is the serialized representation returned to API clients.
type CourseResponse struct {
	ID            uint      `json:"id"`
	CourseCode    string    `json:"course_code"`
	CourseName    string    `json:"course_name"`
	Program       string    `json:"program"`
	Credits       float64   `json:"credits"`
	Prerequisites string    `json:"prerequisites"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewCourseResponse converts a model into a DTO.
func NewCourseResponse(model models.Course) CourseResponse {
	return CourseResponse{
		ID:            model.ID,
		CourseCode:    model.CourseCode,
		CourseName:    model.CourseName,
		Program:       model.Program,
		Credits:       model.Credits,
		Prerequisites: model.Prerequisites,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// NewCourseResponseSlice converts a slice of models into DTOs.
func NewCourseResponseSlice(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}

	return responses
}
