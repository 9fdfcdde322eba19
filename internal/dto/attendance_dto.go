package dto

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// AttendanceMarkRequest describes the payload for marking attendance.
type AttendanceMarkRequest struct {
	StudentID string `json:"student_id" validate:"required,min=1,max=64"`
	Status    string `json:"status" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

// AttendanceRecordResponse is the serialized representation returned to API clients.
type AttendanceRecordResponse struct {
	ID        uint      `json:"id"`
	StudentID string    `json:"student_id"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AttendanceSummaryRow reports one student's aggregated attendance.
type AttendanceSummaryRow struct {
	StudentID  string  `json:"student_id"`
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
}

// NewAttendanceRecordResponse converts a model into a DTO.
func NewAttendanceRecordResponse(model models.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:        model.ID,
		StudentID: model.StudentID,
		Status:    string(model.Status),
		Date:      model.Date,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewAttendanceRecordResponseSlice converts a slice of models into DTOs.
func NewAttendanceRecordResponseSlice(records []models.AttendanceRecord) []AttendanceRecordResponse {
	responses := make([]AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewAttendanceRecordResponse(record))
	}

	return responses
}
