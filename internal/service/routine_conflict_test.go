package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

func sampleRoutine() []models.RoutineEntry {
	return []models.RoutineEntry{
		{ID: 1, CourseCode: "CSE101", TimeSlot: models.TimeSlotFirst, Weekday: models.WeekdaySunday},
		{ID: 2, CourseCode: "CSE102", TimeSlot: models.TimeSlotSecond, Weekday: models.WeekdaySunday},
		{ID: 3, CourseCode: "MAT110", TimeSlot: models.TimeSlotFirst, Weekday: models.WeekdayMonday},
	}
}

func TestFindSlotConflictAcceptsFreeSlot(t *testing.T) {
	candidate := models.RoutineEntry{CourseCode: "PHY120", TimeSlot: models.TimeSlotThird, Weekday: models.WeekdaySunday}

	require.Nil(t, FindSlotConflict(sampleRoutine(), candidate, 0))
}

func TestFindSlotConflictRejectsOccupiedSlot(t *testing.T) {
	candidate := models.RoutineEntry{CourseCode: "PHY120", TimeSlot: models.TimeSlotFirst, Weekday: models.WeekdaySunday}

	conflict := FindSlotConflict(sampleRoutine(), candidate, 0)
	require.NotNil(t, conflict)
	require.Equal(t, uint(1), conflict.EntryID)
	require.Equal(t, models.WeekdaySunday, conflict.Weekday)
	require.Equal(t, models.TimeSlotFirst, conflict.TimeSlot)
	require.Contains(t, conflict.Error(), "Sunday")
	require.Contains(t, conflict.Error(), "9:00–10:30 AM")
}

func TestFindSlotConflictExcludesEntryBeingEdited(t *testing.T) {
	// Re-saving entry 1 into its own unchanged slot must not clash with itself.
	candidate := models.RoutineEntry{ID: 1, CourseCode: "CSE101", TimeSlot: models.TimeSlotFirst, Weekday: models.WeekdaySunday}

	require.Nil(t, FindSlotConflict(sampleRoutine(), candidate, 1))
}

func TestFindSlotConflictEditStillClashesWithOtherEntries(t *testing.T) {
	// Moving entry 1 onto entry 2's slot clashes even though entry 1 is excluded.
	candidate := models.RoutineEntry{ID: 1, CourseCode: "CSE101", TimeSlot: models.TimeSlotSecond, Weekday: models.WeekdaySunday}

	conflict := FindSlotConflict(sampleRoutine(), candidate, 1)
	require.NotNil(t, conflict)
	require.Equal(t, uint(2), conflict.EntryID)
}

func TestFindSlotConflictSameTimeDifferentDay(t *testing.T) {
	candidate := models.RoutineEntry{CourseCode: "PHY120", TimeSlot: models.TimeSlotFirst, Weekday: models.WeekdayThursday}

	require.Nil(t, FindSlotConflict(sampleRoutine(), candidate, 0))
}

func TestFindSlotConflictEmptyRoutine(t *testing.T) {
	candidate := models.RoutineEntry{CourseCode: "CSE101", TimeSlot: models.TimeSlotFirst, Weekday: models.WeekdaySunday}

	require.Nil(t, FindSlotConflict(nil, candidate, 0))
}
