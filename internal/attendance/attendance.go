package attendance

import (
	"time"

	attendanceDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/attendance"
)

// Entry is one attendance log: an employee worked a shift on a project on a
// given date. Hours and overtime are derived from the shift times at record
// time and stored, so reads never recompute them.
type Entry struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employee_id"`
	ProjectID       int64     `json:"project_id"`
	LogDate         time.Time `json:"log_date"`
	TimeIn          string    `json:"time_in"`
	TimeOut         string    `json:"time_out"`
	AttendanceHours float64   `json:"attendance_hours"`
	OvertimeHours   float64   `json:"overtime_hours"`
	CreatedAt       time.Time `json:"created_at"`

	// Populated on joined reads only.
	EmployeeName string `json:"employee_name,omitempty"`
	ProjectName  string `json:"project_name,omitempty"`
}

func ToDataModel(e *Entry) *attendanceDatamodel.Log {
	return &attendanceDatamodel.Log{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		ProjectID:       e.ProjectID,
		LogDate:         e.LogDate,
		TimeIn:          e.TimeIn,
		TimeOut:         e.TimeOut,
		AttendanceHours: e.AttendanceHours,
		OvertimeHours:   e.OvertimeHours,
		CreatedAt:       e.CreatedAt,
	}
}

func FromDataModel(m *attendanceDatamodel.Log) *Entry {
	return &Entry{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		ProjectID:       m.ProjectID,
		LogDate:         m.LogDate,
		TimeIn:          m.TimeIn,
		TimeOut:         m.TimeOut,
		AttendanceHours: m.AttendanceHours,
		OvertimeHours:   m.OvertimeHours,
		CreatedAt:       m.CreatedAt,
	}
}

func FromDataModelSlice(models []*attendanceDatamodel.Log) []*Entry {
	entries := make([]*Entry, 0, len(models))
	for _, m := range models {
		entries = append(entries, FromDataModel(m))
	}
	return entries
}
