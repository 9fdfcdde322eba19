package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

func TestEventsOnMatchesExactDate(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: 1, Date: "2026-03-26", Description: "Independence Day", Type: models.EventHoliday},
		{ID: 2, Date: "2026-03-26", Description: "Flag hoisting", Type: models.EventInstitutional},
		{ID: 3, Date: "2026-03-27", Description: "Quiz 2", Type: models.EventExam},
	}

	onDay := EventsOn(events, "2026-03-26")
	require.Len(t, onDay, 2)
	require.Equal(t, uint(1), onDay[0].ID)
	require.Equal(t, uint(2), onDay[1].ID)

	require.Empty(t, EventsOn(events, "2026-03-28"))
}

func TestClassifyDayHolidayWins(t *testing.T) {
	require.Equal(t, DayPlain, ClassifyDay(nil))

	require.Equal(t, DayHasEvent, ClassifyDay([]models.CalendarEvent{
		{Type: models.EventExam},
	}))

	// A holiday dominates any other event on the same day.
	require.Equal(t, DayHoliday, ClassifyDay([]models.CalendarEvent{
		{Type: models.EventExam},
		{Type: models.EventHoliday},
		{Type: models.EventGeneral},
	}))
}

func TestCountUpcomingWindow(t *testing.T) {
	today := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		{Date: "2026-02-28", Type: models.EventExam},     // past
		{Date: "2026-03-01", Type: models.EventGeneral},  // today counts
		{Date: "2026-03-15", Type: models.EventDeadline}, // inside window
		{Date: "2026-03-31", Type: models.EventExam},     // window edge
		{Date: "2026-04-01", Type: models.EventExam},     // beyond window
	}

	require.Equal(t, 3, CountUpcoming(events, today, 30*24*time.Hour))
}

func TestCountUpcomingUsesLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)
	today := time.Date(2026, 3, 1, 5, 0, 0, 0, zone)

	// Yesterday's local date must not count, even though its UTC midnight
	// falls after the UTC-truncated instant of "today".
	past := []models.CalendarEvent{
		{Date: "2026-02-28", Type: models.EventGeneral},
		{Date: "2026-03-05", Type: models.EventExam},
	}
	require.Equal(t, 1, CountUpcoming(past, today, 30*24*time.Hour))

	// The final local day of the window still counts.
	edge := []models.CalendarEvent{
		{Date: "2026-03-31", Type: models.EventDeadline},
	}
	require.Equal(t, 1, CountUpcoming(edge, today, 30*24*time.Hour))
}

func TestCountUpcomingSkipsMalformedDates(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	events := []models.CalendarEvent{
		{Date: "not-a-date", Type: models.EventGeneral},
		{Date: "2026-03-05", Type: models.EventGeneral},
	}

	require.Equal(t, 1, CountUpcoming(events, today, 30*24*time.Hour))
}
