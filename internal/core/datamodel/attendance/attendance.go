package attendance

import "time"

// Log is one attendance punch for an employee on a project. The composite
// unique index is the duplicate detector for concurrent writes to the same
// (employee, project, date) key.
type Log struct {
	ID              int64     `gorm:"primaryKey"`
	EmployeeID      int64     `gorm:"column:employee_id;not null;uniqueIndex:idx_attendance_key"`
	ProjectID       int64     `gorm:"column:project_id;not null;uniqueIndex:idx_attendance_key"`
	LogDate         time.Time `gorm:"column:log_date;type:date;not null;uniqueIndex:idx_attendance_key"`
	TimeIn          string    `gorm:"column:time_in;not null"`
	TimeOut         string    `gorm:"column:time_out;not null"`
	AttendanceHours float64   `gorm:"column:attendance_hours;not null"`
	OvertimeHours   float64   `gorm:"column:overtime_hours;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (Log) TableName() string {
	return "attendance_logs"
}
