package service

import (
	"fmt"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// SlotConflict names the occupied weekday/time-slot cell that rejected a
// candidate routine entry.
type SlotConflict struct {
	EntryID  uint
	Weekday  models.Weekday
	TimeSlot models.TimeSlot
}

// Error satisfies the error interface so a conflict can travel through the
// usual error-return path.
func (c *SlotConflict) Error() string {
	return fmt.Sprintf("a class is already scheduled for %s at %s", c.Weekday, c.TimeSlot)
}

// FindSlotConflict scans the existing routine for an entry occupying the
// candidate's (weekday, time slot) cell. The entry identified by excludeID
// is skipped so an in-place edit never conflicts with its own prior value;
// pass zero when adding a new entry. Returns nil when the slot is free.
//
// Comparison is exact: weekday and time slot are closed enumerations
// validated at the boundary, so no normalization happens here.
func FindSlotConflict(existing []models.RoutineEntry, candidate models.RoutineEntry, excludeID uint) *SlotConflict {
	for _, entry := range existing {
		if excludeID != 0 && entry.ID == excludeID {
			continue
		}
		if entry.TimeSlot == candidate.TimeSlot && entry.Weekday == candidate.Weekday {
			return &SlotConflict{
				EntryID:  entry.ID,
				Weekday:  entry.Weekday,
				TimeSlot: entry.TimeSlot,
			}
		}
	}

	return nil
}
