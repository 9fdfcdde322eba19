package models

import "time"

// EventType classifies a calendar event.
type EventType string

const (
	EventGeneral       EventType = "General"
	EventHoliday       EventType = "Holiday"
	EventExam          EventType = "Exam"
	EventInstitutional EventType = "Institutional"
	EventDeadline      EventType = "Deadline"
)

// EventTypes lists the recognised event classifications.
func EventTypes() []EventType {
	return []EventType{EventGeneral, EventHoliday, EventExam, EventInstitutional, EventDeadline}
}

// Valid reports whether the event type is recognised.
func (e EventType) Valid() bool {
	switch e {
	case EventGeneral, EventHoliday, EventExam, EventInstitutional, EventDeadline:
		return true
	}
	return false
}

// CalendarEvent is a dated entry on the academic calendar. Multiple events
// may share a date; duplicates are permitted.
type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:10;not null;index" json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Type        EventType `gorm:"size:32;not null" json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
