package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// RoutineEntryRequest describes the payload for placing a class into the routine.
// The same shape serves create and update; all fields are required because a
// routine cell is meaningless without any of them.
type RoutineEntryRequest struct {
	CourseCode string `json:"course_code" validate:"required,min=1,max=64"`
	TimeSlot   string `json:"time_slot" validate:"required"`
	Weekday    string `json:"weekday" validate:"required"`
}

// RoutineEntryResponse is the serialized representation returned to API clients.
type RoutineEntryResponse struct {
	ID         uint      `json:"id"`
	CourseCode string    `json:"course_code"`
	TimeSlot   string    `json:"time_slot"`
	Weekday    string    `json:"weekday"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewRoutineEntryResponse converts a model into a DTO.
func NewRoutineEntryResponse(model models.RoutineEntry) RoutineEntryResponse {
	return RoutineEntryResponse{
		ID:         model.ID,
		CourseCode: model.CourseCode,
		TimeSlot:   string(model.TimeSlot),
		Weekday:    string(model.Weekday),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// NewRoutineEntryResponseSlice converts a slice of models into DTOs.
func NewRoutineEntryResponseSlice(entries []models.RoutineEntry) []RoutineEntryResponse {
	responses := make([]RoutineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewRoutineEntryResponse(entry))
	}

	return responses
}
