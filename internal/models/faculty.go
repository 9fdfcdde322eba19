package models

import "time"

// Faculty represents a teaching staff member.
type Faculty struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FacultyID   string    `gorm:"size:64;uniqueIndex;not null" json:"faculty_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Department  string    `gorm:"size:255" json:"department"`
	Rank        string    `gorm:"size:128" json:"rank"`
	ContactInfo string    `gorm:"size:255" json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
