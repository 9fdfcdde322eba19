package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// CalendarEventCreateRequest describes the payload for adding a calendar event.
type CalendarEventCreateRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required,min=1"`
	Type        string `json:"type" validate:"required"`
}

// CalendarEventResponse is the serialized representation returned to API clients.
type CalendarEventResponse struct {
	ID          uint      `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// CalendarDayResponse reports the events of one date and its visual state.
type CalendarDayResponse struct {
	Date    string                  `json:"date"`
	State   string                  `json:"state"`
	IsToday bool                    `json:"is_today"`
	Events  []CalendarEventResponse `json:"events"`
}

// NewCalendarEventResponse converts a model into a DTO.
func NewCalendarEventResponse(model models.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:          model.ID,
		Date:        model.Date,
		Description: model.Description,
		Type:        string(model.Type),
		CreatedAt:   model.CreatedAt,
	}
}

// NewCalendarEventResponseSlice converts a slice of models into DTOs.
func NewCalendarEventResponseSlice(events []models.CalendarEvent) []CalendarEventResponse {
	responses := make([]CalendarEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, NewCalendarEventResponse(event))
	}

	return responses
}
