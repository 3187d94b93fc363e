package payrecord

import (
	"context"
	"log/slog"
	"time"

	"github.com/rdelacruz/payroll-management/internal/core/events"
)

type Repository interface {
	Create(record *PayRecord) error
	GetByID(id int64) (*PayRecord, error)
	GetByEmployee(employeeID int64) ([]*PayRecord, error)
	GetByPayroll(payrollID int64) ([]*PayRecord, error)
	// GetPayrollEmployee resolves the employee a payroll belongs to, so a
	// manual record can be pinned to the right employee without trusting the
	// request.
	GetPayrollEmployee(payrollID int64) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo        Repository
	eventBus    EventPublisher
	generateRef ReferenceGenerator
	logger      *slog.Logger
}

func NewService(repo Repository, eventBus EventPublisher, generateRef ReferenceGenerator, logger *slog.Logger) *Service {
	if generateRef == nil {
		generateRef = DefaultReferenceGenerator
	}
	return &Service{
		repo:        repo,
		eventBus:    eventBus,
		generateRef: generateRef,
		logger:      logger,
	}
}

// Create registers a manual disbursement against an existing payroll.
func (s *Service) Create(ctx context.Context, dto CreatePayRecordDTO) (*PayRecord, error) {
	paid, err := dto.Parse()
	if err != nil {
		s.logger.Warn("pay record validation failed", "error", err)
		return nil, err
	}

	employeeID, err := s.repo.GetPayrollEmployee(dto.PayrollID)
	if err != nil {
		return nil, err
	}

	reference := dto.ReferenceNumber
	if reference == "" {
		reference = s.generateRef()
	}

	record := &PayRecord{
		PayrollID:       dto.PayrollID,
		EmployeeID:      employeeID,
		DatePaid:        paid,
		Amount:          dto.Amount,
		ReferenceNumber: reference,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Warn("failed to create pay record",
			"error", err,
			"payroll_id", dto.PayrollID,
			"reference_number", reference)
		return nil, err
	}

	s.logger.Info("pay record created",
		"pay_record_id", record.ID,
		"payroll_id", record.PayrollID,
		"employee_id", record.EmployeeID,
		"amount", record.Amount,
		"reference_number", record.ReferenceNumber)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.NewPayRecordCreatedEvent(
			record.ID, record.PayrollID, record.EmployeeID, record.Amount, record.ReferenceNumber))
	}

	return record, nil
}

func (s *Service) GetPayRecord(id int64) (*PayRecord, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByEmployee(employeeID int64) ([]*PayRecord, error) {
	return s.repo.GetByEmployee(employeeID)
}

func (s *Service) ListByPayroll(payrollID int64) ([]*PayRecord, error) {
	if _, err := s.repo.GetPayrollEmployee(payrollID); err != nil {
		return nil, err
	}
	return s.repo.GetByPayroll(payrollID)
}
