package dto

// DashboardResponse aggregates headline counts for the landing view.
type DashboardResponse struct {
	Students          int64 `json:"students"`
	Faculty           int64 `json:"faculty"`
	Courses           int64 `json:"courses"`
	AttendanceRecords int64 `json:"attendance_records"`
	GradesEntered     int64 `json:"grades_entered"`
	UpcomingEvents    int   `json:"upcoming_events"`
}
