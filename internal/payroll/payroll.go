package payroll

import (
	"time"

	payrollDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payroll"
)

// Payroll is one committed weekly pay computation. At most one payroll may
// exist per (employee, week); commits for an already-paid week are rejected.
type Payroll struct {
	ID          int64              `json:"id"`
	EmployeeID  int64              `json:"employee_id"`
	GrossSalary float64            `json:"gross_salary"`
	NetSalary   float64            `json:"net_salary"`
	WeekStart   time.Time          `json:"week_start"`
	WeekEnd     time.Time          `json:"week_end"`
	Deductions  []AppliedDeduction `json:"deductions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// AppliedDeduction is a registered deduction charged on one payroll with the
// amount withheld there.
type AppliedDeduction struct {
	DeductionID   int64   `json:"deduction_id"`
	DeductionType string  `json:"deduction_type,omitempty"`
	Amount        float64 `json:"amount"`
}

// Computation is the full breakdown of a pay calculation. It is returned by
// the preview endpoint and feeds the commit path; nothing here is persisted
// until a commit.
type Computation struct {
	EmployeeID      int64              `json:"employee_id"`
	WeekStart       time.Time          `json:"week_start"`
	WeekEnd         time.Time          `json:"week_end"`
	DaysWorked      int                `json:"days_worked"`
	TotalHours      float64            `json:"total_hours"`
	OvertimeHours   float64            `json:"overtime_hours"`
	DailyRate       float64            `json:"daily_rate"`
	RegularPay      float64            `json:"regular_pay"`
	OvertimePay     float64            `json:"overtime_pay"`
	GrossSalary     float64            `json:"gross_salary"`
	TotalDeductions float64            `json:"total_deductions"`
	NetSalary       float64            `json:"net_salary"`
	Deductions      []AppliedDeduction `json:"deductions,omitempty"`
}

func ToDataModel(p *Payroll) *payrollDatamodel.Payroll {
	return &payrollDatamodel.Payroll{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		GrossSalary: p.GrossSalary,
		NetSalary:   p.NetSalary,
		WeekStart:   p.WeekStart,
		WeekEnd:     p.WeekEnd,
		CreatedAt:   p.CreatedAt,
	}
}

func FromDataModel(m *payrollDatamodel.Payroll) *Payroll {
	return &Payroll{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		GrossSalary: m.GrossSalary,
		NetSalary:   m.NetSalary,
		WeekStart:   m.WeekStart,
		WeekEnd:     m.WeekEnd,
		CreatedAt:   m.CreatedAt,
	}
}

func FromDataModelSlice(models []*payrollDatamodel.Payroll) []*Payroll {
	payrolls := make([]*Payroll, 0, len(models))
	for _, m := range models {
		payrolls = append(payrolls, FromDataModel(m))
	}
	return payrolls
}
