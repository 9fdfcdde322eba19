package models

import "time"

// Weekday is one of the teaching days of the academic week.
type Weekday string

// Teaching days run Sunday through Thursday.
const (
	WeekdaySunday    Weekday = "Sunday"
	WeekdayMonday    Weekday = "Monday"
	WeekdayTuesday   Weekday = "Tuesday"
	WeekdayWednesday Weekday = "Wednesday"
	WeekdayThursday  Weekday = "Thursday"
)

// Weekdays lists the teaching days in week order.
func Weekdays() []Weekday {
	return []Weekday{WeekdaySunday, WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday}
}

// Valid reports whether the weekday is a recognised teaching day.
func (w Weekday) Valid() bool {
	switch w {
	case WeekdaySunday, WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday:
		return true
	}
	return false
}

// TimeSlot is one of the fixed teaching periods of a day.
type TimeSlot string

const (
	TimeSlotFirst  TimeSlot = "9:00–10:30 AM"
	TimeSlotSecond TimeSlot = "10:40–12:10 PM"
	TimeSlotThird  TimeSlot = "12:20–1:50 PM"
	TimeSlotFourth TimeSlot = "2:00–3:30 PM"
	TimeSlotFifth  TimeSlot = "3:40–5:10 PM"
)

// TimeSlots lists the teaching periods in day order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{TimeSlotFirst, TimeSlotSecond, TimeSlotThird, TimeSlotFourth, TimeSlotFifth}
}

// Valid reports whether the time slot is a recognised teaching period.
func (t TimeSlot) Valid() bool {
	switch t {
	case TimeSlotFirst, TimeSlotSecond, TimeSlotThird, TimeSlotFourth, TimeSlotFifth:
		return true
	}
	return false
}

// RoutineEntry places a course into a weekday/time-slot cell of the timetable.
// The (weekday, time slot) pair must be unique across the whole routine; that
// invariant is enforced by the conflict validator, not by storage.
type RoutineEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CourseCode string    `gorm:"size:64;not null" json:"course_code"`
	TimeSlot   TimeSlot  `gorm:"size:32;not null" json:"time_slot"`
	Weekday    Weekday   `gorm:"size:16;not null" json:"weekday"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
