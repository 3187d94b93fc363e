package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/attendance"
	"github.com/rdelacruz/payroll-management/internal/core/events"
	"github.com/rdelacruz/payroll-management/internal/deduction"
	"github.com/rdelacruz/payroll-management/internal/employee"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
)

type Repository interface {
	// Commit persists the payroll, its deduction charges and the pay record
	// in one transaction. Either all three land or none do.
	Commit(p *Payroll, record *payrecord.PayRecord) error
	GetByID(id int64) (*Payroll, error)
	GetByEmployee(employeeID int64) ([]*Payroll, error)
	Delete(id int64) error
}

type AttendanceSource interface {
	GetByEmployee(employeeID int64, dateRange attendance.DateRange) ([]*attendance.Entry, error)
}

type EmployeeDirectory interface {
	GetByID(id int64) (*employee.Employee, error)
}

type DeductionDirectory interface {
	GetByID(id int64) (*deduction.Deduction, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo        Repository
	attendance  AttendanceSource
	employees   EmployeeDirectory
	deductions  DeductionDirectory
	eventBus    EventPublisher
	cfg         internal.PayrollConfig
	generateRef payrecord.ReferenceGenerator
	logger      *slog.Logger
}

func NewService(
	repo Repository,
	attendanceSource AttendanceSource,
	employees EmployeeDirectory,
	deductions DeductionDirectory,
	eventBus EventPublisher,
	cfg internal.PayrollConfig,
	generateRef payrecord.ReferenceGenerator,
	logger *slog.Logger,
) *Service {
	if generateRef == nil {
		generateRef = payrecord.DefaultReferenceGenerator
	}
	return &Service{
		repo:        repo,
		attendance:  attendanceSource,
		employees:   employees,
		deductions:  deductions,
		eventBus:    eventBus,
		cfg:         cfg,
		generateRef: generateRef,
		logger:      logger,
	}
}

// Calculate previews the pay for an employee's week without writing
// anything. A week with no attendance yields a no-data outcome rather than a
// zero payroll.
func (s *Service) Calculate(dto CalculatePayrollDTO) (*Computation, error) {
	start, end, err := dto.Parse()
	if err != nil {
		s.logger.Warn("payroll validation failed", "error", err)
		return nil, err
	}
	return s.compute(dto, start, end)
}

func (s *Service) compute(dto CalculatePayrollDTO, start, end time.Time) (*Computation, error) {
	emp, err := s.employees.GetByID(dto.EmployeeID)
	if err != nil {
		return nil, err
	}

	entries, err := s.attendance.GetByEmployee(dto.EmployeeID, attendance.DateRange{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, internal.ErrNoAttendanceData
	}

	// A day is paid once no matter how many project entries land on it, but
	// every entry's hours count toward the totals.
	days := make(map[string]struct{}, len(entries))
	var totalHours, overtimeHours float64
	for _, entry := range entries {
		days[entry.LogDate.Format(DateLayout)] = struct{}{}
		totalHours += entry.AttendanceHours
		overtimeHours += entry.OvertimeHours
	}

	regularPay := float64(len(days)) * emp.DailyRate
	hourlyRate := emp.DailyRate / s.cfg.RegularHoursPerDay
	overtimePay := overtimeHours * hourlyRate * s.cfg.OvertimeMultiplier
	gross := regularPay + overtimePay

	applied := make([]AppliedDeduction, 0, len(dto.Deductions))
	var totalDeductions float64
	for _, charge := range dto.Deductions {
		registered, err := s.deductions.GetByID(charge.DeductionID)
		if err != nil {
			return nil, err
		}
		if registered.EmployeeID != dto.EmployeeID {
			return nil, internal.NewValidationError(
				fmt.Sprintf("deduction %d is not registered for employee %d", charge.DeductionID, dto.EmployeeID),
				internal.ErrCodeValidationFailed)
		}
		applied = append(applied, AppliedDeduction{
			DeductionID:   registered.ID,
			DeductionType: registered.DeductionType,
			Amount:        charge.Amount,
		})
		totalDeductions += charge.Amount
	}

	return &Computation{
		EmployeeID:      dto.EmployeeID,
		WeekStart:       start,
		WeekEnd:         end,
		DaysWorked:      len(days),
		TotalHours:      totalHours,
		OvertimeHours:   overtimeHours,
		DailyRate:       emp.DailyRate,
		RegularPay:      regularPay,
		OvertimePay:     overtimePay,
		GrossSalary:     gross,
		TotalDeductions: totalDeductions,
		NetSalary:       gross - totalDeductions,
		Deductions:      applied,
	}, nil
}

// Commit computes the week's pay, then persists the payroll together with
// its pay record. If the pay record cannot be written the payroll is rolled
// back with it; a partially committed week never exists.
func (s *Service) Commit(ctx context.Context, dto CommitPayrollDTO) (*Payroll, *payrecord.PayRecord, error) {
	start, end, err := dto.Parse()
	if err != nil {
		s.logger.Warn("payroll validation failed", "error", err)
		return nil, nil, err
	}

	datePaid, err := dto.ParseDatePaid(time.Now())
	if err != nil {
		return nil, nil, err
	}

	computation, err := s.compute(dto.CalculatePayrollDTO, start, end)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	p := &Payroll{
		EmployeeID:  computation.EmployeeID,
		GrossSalary: computation.GrossSalary,
		NetSalary:   computation.NetSalary,
		WeekStart:   computation.WeekStart,
		WeekEnd:     computation.WeekEnd,
		Deductions:  computation.Deductions,
		CreatedAt:   now,
	}
	record := &payrecord.PayRecord{
		EmployeeID:      computation.EmployeeID,
		DatePaid:        datePaid,
		Amount:          computation.NetSalary,
		ReferenceNumber: s.generateRef(),
		CreatedAt:       now,
	}

	if err := s.repo.Commit(p, record); err != nil {
		s.logger.Error("payroll commit failed",
			"error", err,
			"employee_id", p.EmployeeID,
			"week_start", dto.WeekStart,
			"week_end", dto.WeekEnd)
		return nil, nil, err
	}

	s.logger.Info("payroll committed",
		"payroll_id", p.ID,
		"employee_id", p.EmployeeID,
		"gross_salary", p.GrossSalary,
		"net_salary", p.NetSalary,
		"reference_number", record.ReferenceNumber)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewPayrollCommittedEvent(
			p.ID, p.EmployeeID, p.GrossSalary, p.NetSalary,
			p.WeekStart.Format(DateLayout), p.WeekEnd.Format(DateLayout)))
		s.eventBus.Publish(ctx, events.NewPayRecordCreatedEvent(
			record.ID, record.PayrollID, record.EmployeeID, record.Amount, record.ReferenceNumber))
	}

	return p, record, nil
}

func (s *Service) GetPayroll(id int64) (*Payroll, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByEmployee(employeeID int64) ([]*Payroll, error) {
	return s.repo.GetByEmployee(employeeID)
}

func (s *Service) DeletePayroll(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Warn("failed to delete payroll", "error", err, "payroll_id", id)
		return err
	}
	s.logger.Info("payroll deleted", "payroll_id", id)
	return nil
}
