package service

import (
	"github.com/acadia-edu/acadia-go-api/internal/dto"
	"github.com/acadia-edu/acadia-go-api/internal/models"
)

// GradePointOf maps a marks value onto the institutional 4.00 scale. Bands
// are evaluated top-down with inclusive lower bounds: 80 and above earns
// 4.00, below 40 earns 0.00. The result is stored on the grade record at
// write time and never re-derived afterwards.
func GradePointOf(marks float64) float64 {
	switch {
	case marks >= 80:
		return 4.00
	case marks >= 75:
		return 3.75
	case marks >= 70:
		return 3.50
	case marks >= 65:
		return 3.25
	case marks >= 60:
		return 3.00
	case marks >= 55:
		return 2.75
	case marks >= 50:
		return 2.50
	case marks >= 45:
		return 2.25
	case marks >= 40:
		return 2.00
	default:
		return 0.00
	}
}

// SummarizeGPA folds grade records into a per-student mean grade point in
// first-seen order. Students without grade records never appear; unresolved
// IDs keep the raw ID as the display name.
func SummarizeGPA(records []models.GradeRecord, studentNames map[string]string) []dto.GPASummaryRow {
	type accumulator struct {
		total float64
		count int
	}

	order := make([]string, 0)
	index := make(map[string]int)
	sums := make([]accumulator, 0)
	rows := make([]dto.GPASummaryRow, 0)

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
			rows = append(rows, dto.GPASummaryRow{StudentID: record.StudentID, Name: name})
			sums = append(sums, accumulator{})
		}

		sums[pos].total += record.GradePoint
		sums[pos].count++
	}

	for i := range order {
		if sums[i].count > 0 {
			rows[i].OverallGPA = round2(sums[i].total / float64(sums[i].count))
		}
	}

	return rows
}
