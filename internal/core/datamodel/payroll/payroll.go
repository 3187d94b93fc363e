package payroll

import "time"

// Payroll is one committed pay computation for an employee and week. The
// unique index on (employee_id, week_start, week_end) is what stops two
// concurrent submissions from double-paying the same week.
type Payroll struct {
	ID          int64     `gorm:"primaryKey"`
	EmployeeID  int64     `gorm:"column:employee_id;not null;uniqueIndex:idx_payroll_week"`
	GrossSalary float64   `gorm:"column:gross_salary;not null"`
	NetSalary   float64   `gorm:"column:net_salary;not null"`
	WeekStart   time.Time `gorm:"column:week_start;type:date;not null;uniqueIndex:idx_payroll_week"`
	WeekEnd     time.Time `gorm:"column:week_end;type:date;not null;uniqueIndex:idx_payroll_week"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// PayrollDeduction links a payroll to a registered deduction with the amount
// charged on that payroll.
type PayrollDeduction struct {
	PayrollID       int64   `gorm:"column:payroll_id;primaryKey"`
	DeductionID     int64   `gorm:"column:deduction_id;primaryKey"`
	DeductionAmount float64 `gorm:"column:deduction_amount;not null"`
}

func (PayrollDeduction) TableName() string {
	return "payroll_deductions"
}
