package models

import "time"

// Student represents an enrolled learner identified by a human-assigned ID.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID string    `gorm:"size:64;uniqueIndex;not null" json:"student_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Major     string    `gorm:"size:255" json:"major"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
