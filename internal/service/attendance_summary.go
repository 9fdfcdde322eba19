package service

import (
	"math"

	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// SummarizeAttendance folds attendance records into per-student totals in
// first-seen order: a student's row position is fixed by the first record
// that mentions them, which is the display contract for the summary view.
// Students without records never appear. Unresolved IDs keep the raw ID as
// the display name.
func SummarizeAttendance(records []models.AttendanceRecord, studentNames map[string]string) []dto.AttendanceSummaryRow {
	order := make([]string, 0)
	index := make(map[string]int)
	rows := make([]dto.AttendanceSummaryRow, 0)

	for _, record := range records {
		pos, seen := index[record.StudentID]
		if !seen {
			name := record.StudentID
			if resolved, ok := studentNames[record.StudentID]; ok {
				name = resolved
			}
			pos = len(rows)
			index[record.StudentID] = pos
			order = append(order, record.StudentID)
			rows = append(rows, dto.AttendanceSummaryRow{StudentID: record.StudentID, Name: name})
		}

		rows[pos].Total++
		if record.Status == models.AttendancePresent {
			rows[pos].Present++
		}
	}

	for i := range order {
		rows[i].Absent = rows[i].Total - rows[i].Present
		if rows[i].Total > 0 {
			rows[i].Percentage = round2(float64(rows[i].Present) / float64(rows[i].Total) * 100)
		}
	}

	return rows
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
