package employee

import (
	"time"

	employeeDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/employee"
)

// Employee is the directory entry payroll computations price against: the
// daily rate is the pay for one regular day worked.
type Employee struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"lastname"`
	FirstName string    `json:"firstname"`
	DailyRate float64   `json:"daily_rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:        e.ID,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		DailyRate: e.DailyRate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:        e.ID,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		DailyRate: e.DailyRate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
