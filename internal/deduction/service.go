package deduction

import (
	"log/slog"
	"time"
)

type Repository interface {
	Create(deduction *Deduction) error
	GetByEmployee(employeeID int64) ([]*Deduction, error)
	GetByID(id int64) (*Deduction, error)
}

// EmployeeChecker verifies the referenced employee exists before a deduction
// is registered against them.
type EmployeeChecker interface {
	Exists(employeeID int64) error
}

type Service struct {
	repo      Repository
	employees EmployeeChecker
	logger    *slog.Logger
}

func NewService(repo Repository, employees EmployeeChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

func (s *Service) CreateDeduction(dto CreateDeductionDTO) (*Deduction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.employees.Exists(dto.EmployeeID); err != nil {
		return nil, err
	}

	deduction := &Deduction{
		EmployeeID:    dto.EmployeeID,
		DeductionType: dto.DeductionType,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(deduction); err != nil {
		s.logger.Error("failed to create deduction", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("deduction created",
		"deduction_id", deduction.ID,
		"employee_id", deduction.EmployeeID,
		"type", deduction.DeductionType)

	return deduction, nil
}

func (s *Service) ListByEmployee(employeeID int64) ([]*Deduction, error) {
	return s.repo.GetByEmployee(employeeID)
}
