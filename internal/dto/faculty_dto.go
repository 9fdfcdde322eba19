package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// FacultyCreateRequest describes the payload for registering a faculty member.
type FacultyCreateRequest struct {
	FacultyID   string `json:"faculty_id" validate:"required,min=1,max=64"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Department  string `json:"department" validate:"max=255"`
	Rank        string `json:"rank" validate:"max=128"`
	ContactInfo string `json:"contact_info" validate:"max=255"`
}

// FacultyUpdateRequest describes the payload for updating a faculty member.
type FacultyUpdateRequest struct {
	FacultyID   *string `json:"faculty_id" validate:"omitempty,min=1,max=64"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Department  *string `json:"department" validate:"omitempty,max=255"`
	Rank        *string `json:"rank" validate:"omitempty,max=128"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=255"`
}

// FacultyResponse is the serialized representation returned to API clients.
type FacultyResponse struct {
	ID          uint      `json:"id"`
	FacultyID   string    `json:"faculty_id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Rank        string    `json:"rank"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewFacultyResponse converts a model into a DTO.
func NewFacultyResponse(model models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:          model.ID,
		FacultyID:   model.FacultyID,
		Name:        model.Name,
		Department:  model.Department,
		Rank:        model.Rank,
		ContactInfo: model.ContactInfo,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewFacultyResponseSlice converts a slice of models into DTOs.
func NewFacultyResponseSlice(faculty []models.Faculty) []FacultyResponse {
	responses := make([]FacultyResponse, 0, len(faculty))
	for _, member := range faculty {
		responses = append(responses, NewFacultyResponse(member))
	}

	return responses
}
