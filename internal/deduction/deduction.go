package deduction

import (
	"time"

	"github.com/rdelacruz/payroll-management/internal"
	deductionDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/deduction"
)

// Deduction is a labelled deduction (tax, loan, insurance...) registered
// against an employee. Charged amounts are supplied per payroll.
type Deduction struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	DeductionType string    `json:"deduction_type"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateDeductionDTO struct {
	EmployeeID    int64  `json:"employee_id"`
	DeductionType string `json:"deduction_type"`
}

func (dto CreateDeductionDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.DeductionType == "" {
		return internal.NewValidationError("deduction_type is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func FromDataModel(d *deductionDatamodel.Deduction) *Deduction {
	return &Deduction{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		DeductionType: d.DeductionType,
		CreatedAt:     d.CreatedAt,
	}
}

func FromDataModelSlice(deductions []*deductionDatamodel.Deduction) []*Deduction {
	result := make([]*Deduction, len(deductions))
	for i, d := range deductions {
		result[i] = FromDataModel(d)
	}
	return result
}
