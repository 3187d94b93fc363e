package payroll

import (
	"fmt"
	"time"

	"github.com/rdelacruz/payroll-management/internal"
)

const DateLayout = "2006-01-02"

// DeductionChargeDTO is one deduction to withhold on this payroll. The
// deduction must already be registered against the employee; the amount is
// decided per payroll.
type DeductionChargeDTO struct {
	DeductionID int64   `json:"deduction_id"`
	Amount      float64 `json:"amount"`
}

// CalculatePayrollDTO is the request payload for both the preview and the
// commit path.
type CalculatePayrollDTO struct {
	EmployeeID int64                `json:"employee_id"`
	WeekStart  string               `json:"week_start"`
	WeekEnd    string               `json:"week_end"`
	Deductions []DeductionChargeDTO `json:"deductions,omitempty"`
}

func (dto CalculatePayrollDTO) Parse() (time.Time, time.Time, error) {
	if dto.EmployeeID <= 0 {
		return time.Time{}, time.Time{}, internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}

	start, err := time.Parse(DateLayout, dto.WeekStart)
	if err != nil {
		return time.Time{}, time.Time{}, internal.NewValidationError(
			fmt.Sprintf("week_start must be %s", DateLayout), internal.ErrCodeInvalidDate)
	}

	end, err := time.Parse(DateLayout, dto.WeekEnd)
	if err != nil {
		return time.Time{}, time.Time{}, internal.NewValidationError(
			fmt.Sprintf("week_end must be %s", DateLayout), internal.ErrCodeInvalidDate)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, internal.NewValidationError("week_end must not precede week_start", internal.ErrCodeInvalidDateRange)
	}

	for _, charge := range dto.Deductions {
		if charge.DeductionID <= 0 {
			return time.Time{}, time.Time{}, internal.NewValidationError("deduction_id is required on every deduction charge", internal.ErrCodeValidationFailed)
		}
		if charge.Amount <= 0 {
			return time.Time{}, time.Time{}, internal.NewValidationError("deduction amount must be positive", internal.ErrCodeInvalidAmount)
		}
	}

	return start, end, nil
}

// CommitPayrollDTO commits a computed payroll and records its disbursement.
// DatePaid defaults to today when omitted.
type CommitPayrollDTO struct {
	CalculatePayrollDTO
	DatePaid string `json:"date_paid,omitempty"`
}

func (dto CommitPayrollDTO) ParseDatePaid(now time.Time) (time.Time, error) {
	if dto.DatePaid == "" {
		return now.Truncate(24 * time.Hour), nil
	}
	paid, err := time.Parse(DateLayout, dto.DatePaid)
	if err != nil {
		return time.Time{}, internal.NewValidationError(
			fmt.Sprintf("date_paid must be %s", DateLayout), internal.ErrCodeInvalidDate)
	}
	return paid, nil
}
