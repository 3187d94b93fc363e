package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/attendance"
	attendanceDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/attendance"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

// Create inserts the entry. The composite unique index on
// (employee_id, project_id, log_date) is the arbiter for concurrent writes;
// a violation surfaces as a duplicate-entry conflict.
func (r *AttendanceRepository) Create(entry *attendance.Entry) error {
	model := attendance.ToDataModel(entry)
	model.UpdatedAt = entry.CreatedAt

	if err := r.db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrDuplicateAttendance
		}
		return internal.NewPersistenceError(err)
	}

	entry.ID = model.ID
	return nil
}

func (r *AttendanceRepository) GetByID(id int64) (*attendance.Entry, error) {
	var model attendanceDatamodel.Log
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrAttendanceNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return attendance.FromDataModel(&model), nil
}

// Update rewrites the entry's shift columns. The same unique index that
// guards Create rejects moving the entry onto an occupied key.
func (r *AttendanceRepository) Update(entry *attendance.Entry) error {
	result := r.db.Model(&attendanceDatamodel.Log{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"employee_id":      entry.EmployeeID,
			"project_id":       entry.ProjectID,
			"log_date":         entry.LogDate,
			"time_in":          entry.TimeIn,
			"time_out":         entry.TimeOut,
			"attendance_hours": entry.AttendanceHours,
			"overtime_hours":   entry.OvertimeHours,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return internal.ErrDuplicateAttendance
		}
		return internal.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) Delete(id int64) error {
	result := r.db.Delete(&attendanceDatamodel.Log{}, id)
	if result.Error != nil {
		return internal.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) GetByEmployee(employeeID int64, dateRange attendance.DateRange) ([]*attendance.Entry, error) {
	query := r.db.Model(&attendanceDatamodel.Log{}).Where("employee_id = ?", employeeID)
	if dateRange.Start != nil {
		query = query.Where("log_date >= ?", *dateRange.Start)
	}
	if dateRange.End != nil {
		query = query.Where("log_date <= ?", *dateRange.End)
	}

	var models []*attendanceDatamodel.Log
	if err := query.Order("log_date ASC, project_id ASC").Find(&models).Error; err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return attendance.FromDataModelSlice(models), nil
}

// projectRow carries the joined employee identity alongside the log columns.
type projectRow struct {
	attendanceDatamodel.Log
	LastName  string
	FirstName string
}

func (r *AttendanceRepository) GetByProject(projectID int64) ([]*attendance.Entry, error) {
	var rows []projectRow
	err := r.db.Model(&attendanceDatamodel.Log{}).
		Select("attendance_logs.*, employees.last_name, employees.first_name").
		Joins("JOIN employees ON employees.id = attendance_logs.employee_id").
		Where("attendance_logs.project_id = ?", projectID).
		Order("attendance_logs.log_date ASC, employees.last_name ASC, employees.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}

	entries := make([]*attendance.Entry, 0, len(rows))
	for i := range rows {
		entry := attendance.FromDataModel(&rows[i].Log)
		entry.EmployeeName = rows[i].LastName + ", " + rows[i].FirstName
		entries = append(entries, entry)
	}
	return entries, nil
}
