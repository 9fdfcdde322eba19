package models

import "time"

// Course represents a catalog course offered by a program.
type Course struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CourseCode    string    `gorm:"size:64;uniqueIndex;not null" json:"course_code"`
	CourseName    string    `gorm:"size:255;not null" json:"course_name"`
	Program       string    `gorm:"size:255" json:"program"`
	Credits       float64   `gorm:"not null;default:0" json:"credits"`
	Prerequisites string    `gorm:"type:text" json:"prerequisites"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
