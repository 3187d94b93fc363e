package employee

import (
	"log/slog"
	"time"
)

// Repository interface defines the data access methods for employees
type Repository interface {
	Create(employee *Employee) error
	GetByID(id int64) (*Employee, error)
	GetAll() ([]*Employee, error)
	Update(employee *Employee) error
	Delete(id int64) error
	Exists(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err)
		return nil, err
	}

	now := time.Now()
	employee := &Employee{
		LastName:  dto.LastName,
		FirstName: dto.FirstName,
		DailyRate: dto.DailyRate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(employee); err != nil {
		s.logger.Error("failed to create employee", "error", err)
		return nil, err
	}

	s.logger.Info("employee created",
		"employee_id", employee.ID,
		"lastname", employee.LastName,
		"daily_rate", employee.DailyRate)

	return employee, nil
}

func (s *Service) GetEmployee(id int64) (*Employee, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListEmployees() ([]*Employee, error) {
	return s.repo.GetAll()
}

func (s *Service) UpdateEmployee(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	employee.LastName = dto.LastName
	employee.FirstName = dto.FirstName
	employee.DailyRate = dto.DailyRate
	employee.UpdatedAt = time.Now()

	if err := s.repo.Update(employee); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee removes a directory entry. Deletion is restricted while
// attendance or payroll rows reference the employee.
func (s *Service) DeleteEmployee(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Warn("failed to delete employee", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
