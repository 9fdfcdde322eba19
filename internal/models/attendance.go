package models

import "time"

// AttendanceStatus marks a student present or absent for a day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether the status is a recognised attendance value.
func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// AttendanceRecord is a single per-day attendance mark for a student.
// Nothing deduplicates records per (student, date); a student marked twice
// for the same day counts twice in the summary.
type AttendanceRecord struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	StudentID string           `gorm:"size:64;not null;index" json:"student_id"`
	Status    AttendanceStatus `gorm:"size:16;not null" json:"status"`
	Date      string           `gorm:"size:10;not null" json:"date"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
