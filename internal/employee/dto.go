package employee

import (
	"github.com/rdelacruz/payroll-management/internal"
)

// CreateEmployeeDTO represents the request payload for creating an employee
type CreateEmployeeDTO struct {
	LastName  string  `json:"lastname"`
	FirstName string  `json:"firstname"`
	DailyRate float64 `json:"daily_rate"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.LastName == "" {
		return internal.NewValidationError("lastname is required", internal.ErrCodeValidationFailed)
	}
	if dto.FirstName == "" {
		return internal.NewValidationError("firstname is required", internal.ErrCodeValidationFailed)
	}
	if dto.DailyRate <= 0 {
		return internal.NewValidationError("daily_rate must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	return nil
}

// UpdateEmployeeDTO carries the full replacement state for an employee.
type UpdateEmployeeDTO struct {
	LastName  string  `json:"lastname"`
	FirstName string  `json:"firstname"`
	DailyRate float64 `json:"daily_rate"`
}

func (dto UpdateEmployeeDTO) Validate() error {
	return CreateEmployeeDTO(dto).Validate()
}
