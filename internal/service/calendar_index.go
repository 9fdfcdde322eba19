package service

import (
	"time"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// DayState classifies a calendar date from the events falling on it.
type DayState string

// Holiday outranks HasEvent; a date with no events is Plain. "Today" is a
// presentation overlay decided from the clock, not from events, so it is
// deliberately absent here.
const (
	DayPlain    DayState = "plain"
	DayHasEvent DayState = "has_event"
	DayHoliday  DayState = "holiday"
)

const dateLayout = "2006-01-02"

// EventsOn returns the events whose date exactly matches the query date,
// preserving input order.
func EventsOn(events []models.CalendarEvent, date string) []models.CalendarEvent {
	matched := make([]models.CalendarEvent, 0)
	for _, event := range events {
		if event.Date == date {
			matched = append(matched, event)
		}
	}

	return matched
}

// ClassifyDay derives the visual state of a date from its events.
func ClassifyDay(eventsOnDay []models.CalendarEvent) DayState {
	for _, event := range eventsOnDay {
		if event.Type == models.EventHoliday {
			return DayHoliday
		}
	}
	if len(eventsOnDay) > 0 {
		return DayHasEvent
	}

	return DayPlain
}

// CountUpcoming counts events dated within [today, today+window]. Events
// with unparsable dates are skipped rather than failing the count. The
// window starts at midnight in today's location and event dates are read
// in the same location, so this is a calendar-date comparison rather than
// a UTC-instant one.
func CountUpcoming(events []models.CalendarEvent, today time.Time, window time.Duration) int {
	year, month, day := today.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	end := start.Add(window)

	count := 0
	for _, event := range events {
		eventDate, err := time.ParseInLocation(dateLayout, event.Date, today.Location())
		if err != nil {
			continue
		}
		if !eventDate.Before(start) && !eventDate.After(end) {
			count++
		}
	}

	return count
}
