package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acadia-edu/acadia-go-api/internal/models"
)

func TestSummarizeAttendanceCounts(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-01"},
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-02"},
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-03"},
		{StudentID: "S-1", Status: models.AttendanceAbsent, Date: "2026-03-04"},
	}
	names := map[string]string{"S-1": "Ayesha Rahman"}

	rows := SummarizeAttendance(records, names)
	require.Len(t, rows, 1)
	require.Equal(t, "S-1", rows[0].StudentID)
	require.Equal(t, "Ayesha Rahman", rows[0].Name)
	require.Equal(t, 4, rows[0].Total)
	require.Equal(t, 3, rows[0].Present)
	require.Equal(t, 1, rows[0].Absent)
	require.Equal(t, 75.00, rows[0].Percentage)
}

func TestSummarizeAttendanceFirstSeenOrder(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "S-2", Status: models.AttendancePresent, Date: "2026-03-01"},
		{StudentID: "S-1", Status: models.AttendanceAbsent, Date: "2026-03-01"},
		{StudentID: "S-2", Status: models.AttendanceAbsent, Date: "2026-03-02"},
	}

	rows := SummarizeAttendance(records, nil)
	require.Len(t, rows, 2)
	require.Equal(t, "S-2", rows[0].StudentID)
	require.Equal(t, "S-1", rows[1].StudentID)
}

func TestSummarizeAttendanceCountsDuplicateDates(t *testing.T) {
	// Two marks for the same student on the same date both contribute.
	records := []models.AttendanceRecord{
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-01"},
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-01"},
	}

	rows := SummarizeAttendance(records, nil)
	require.Equal(t, 2, rows[0].Total)
	require.Equal(t, 100.00, rows[0].Percentage)
}

func TestSummarizeAttendanceNameFallsBackToStudentID(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "unknown-9", Status: models.AttendanceAbsent, Date: "2026-03-01"},
	}

	rows := SummarizeAttendance(records, map[string]string{"S-1": "Someone Else"})
	require.Equal(t, "unknown-9", rows[0].Name)
	require.Equal(t, 0.00, rows[0].Percentage)
}

func TestSummarizeAttendancePercentageRounding(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-01"},
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-02"},
		{StudentID: "S-1", Status: models.AttendanceAbsent, Date: "2026-03-03"},
	}

	rows := SummarizeAttendance(records, nil)
	require.Equal(t, 66.67, rows[0].Percentage)
}

func TestSummarizeAttendanceIdempotent(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "S-1", Status: models.AttendancePresent, Date: "2026-03-01"},
		{StudentID: "S-2", Status: models.AttendanceAbsent, Date: "2026-03-01"},
	}

	first := SummarizeAttendance(records, nil)
	second := SummarizeAttendance(records, nil)
	require.Equal(t, first, second)
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	require.Empty(t, SummarizeAttendance(nil, nil))
}
