package attendance

import (
	"log/slog"
	"time"

	"github.com/rdelacruz/payroll-management/internal/timesheet"
)

type Repository interface {
	Create(entry *Entry) error
	GetByID(id int64) (*Entry, error)
	Update(entry *Entry) error
	Delete(id int64) error
	GetByEmployee(employeeID int64, dateRange DateRange) ([]*Entry, error)
	GetByProject(projectID int64) ([]*Entry, error)
}

// EmployeeChecker and ProjectChecker verify the referenced rows exist before
// an entry is written against them.
type EmployeeChecker interface {
	Exists(employeeID int64) error
}

type ProjectChecker interface {
	Exists(projectID int64) error
}

type Service struct {
	repo         Repository
	employees    EmployeeChecker
	projects     ProjectChecker
	regularHours float64
	logger       *slog.Logger
}

func NewService(repo Repository, employees EmployeeChecker, projects ProjectChecker, regularHours float64, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		employees:    employees,
		projects:     projects,
		regularHours: regularHours,
		logger:       logger,
	}
}

// Record validates the shift, derives worked and overtime hours, and
// persists the entry. An invalid shift never reaches storage, and a second
// entry for the same (employee, project, date) key is rejected as a
// duplicate.
func (s *Service) Record(dto RecordAttendanceDTO) (*Entry, error) {
	date, err := dto.Parse()
	if err != nil {
		s.logger.Warn("attendance validation failed", "error", err)
		return nil, err
	}

	if err := s.employees.Exists(dto.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.projects.Exists(dto.ProjectID); err != nil {
		return nil, err
	}

	hours, err := timesheet.ComputeHours(dto.TimeIn, dto.TimeOut)
	if err != nil {
		s.logger.Warn("rejected shift",
			"error", err,
			"employee_id", dto.EmployeeID,
			"time_in", dto.TimeIn,
			"time_out", dto.TimeOut)
		return nil, err
	}

	entry := &Entry{
		EmployeeID:      dto.EmployeeID,
		ProjectID:       dto.ProjectID,
		LogDate:         date,
		TimeIn:          dto.TimeIn,
		TimeOut:         dto.TimeOut,
		AttendanceHours: hours,
		OvertimeHours:   timesheet.OvertimeHours(hours, s.regularHours),
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(entry); err != nil {
		s.logger.Warn("failed to record attendance",
			"error", err,
			"employee_id", dto.EmployeeID,
			"project_id", dto.ProjectID,
			"log_date", dto.LogDate)
		return nil, err
	}

	s.logger.Info("attendance recorded",
		"entry_id", entry.ID,
		"employee_id", entry.EmployeeID,
		"project_id", entry.ProjectID,
		"log_date", dto.LogDate,
		"hours", entry.AttendanceHours,
		"overtime", entry.OvertimeHours)

	return entry, nil
}

// Update replaces an entry's shift, recomputing worked and overtime hours
// from the new times. An invalid replacement shift leaves the stored entry
// untouched, and moving the entry onto a (employee, project, date) key that
// another entry already holds is rejected as a duplicate.
func (s *Service) Update(id int64, dto RecordAttendanceDTO) (*Entry, error) {
	date, err := dto.Parse()
	if err != nil {
		s.logger.Warn("attendance validation failed", "error", err)
		return nil, err
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.employees.Exists(dto.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.projects.Exists(dto.ProjectID); err != nil {
		return nil, err
	}

	hours, err := timesheet.ComputeHours(dto.TimeIn, dto.TimeOut)
	if err != nil {
		s.logger.Warn("rejected shift",
			"error", err,
			"entry_id", id,
			"time_in", dto.TimeIn,
			"time_out", dto.TimeOut)
		return nil, err
	}

	entry.EmployeeID = dto.EmployeeID
	entry.ProjectID = dto.ProjectID
	entry.LogDate = date
	entry.TimeIn = dto.TimeIn
	entry.TimeOut = dto.TimeOut
	entry.AttendanceHours = hours
	entry.OvertimeHours = timesheet.OvertimeHours(hours, s.regularHours)

	if err := s.repo.Update(entry); err != nil {
		s.logger.Warn("failed to update attendance", "error", err, "entry_id", id)
		return nil, err
	}

	s.logger.Info("attendance updated",
		"entry_id", entry.ID,
		"hours", entry.AttendanceHours,
		"overtime", entry.OvertimeHours)

	return entry, nil
}

// DeleteEntry removes a logged shift.
func (s *Service) DeleteEntry(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Warn("failed to delete attendance", "error", err, "entry_id", id)
		return err
	}
	s.logger.Info("attendance deleted", "entry_id", id)
	return nil
}

// ListByEmployee returns the employee's entries ordered by date, optionally
// restricted to an inclusive window. No entries is an empty slice, not an
// error.
func (s *Service) ListByEmployee(employeeID int64, dateRange DateRange) ([]*Entry, error) {
	if err := s.employees.Exists(employeeID); err != nil {
		return nil, err
	}
	return s.repo.GetByEmployee(employeeID, dateRange)
}

// ListByProject returns the project's entries with employee identity joined
// in, ordered by date then employee.
func (s *Service) ListByProject(projectID int64) ([]*Entry, error) {
	if err := s.projects.Exists(projectID); err != nil {
		return nil, err
	}
	return s.repo.GetByProject(projectID)
}
