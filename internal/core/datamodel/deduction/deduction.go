package deduction

import "time"

// Deduction is a labelled deduction registered against an employee. The
// charged amount is supplied per payroll via the payroll_deductions link,
// not stored here.
type Deduction struct {
	ID            int64     `gorm:"primaryKey"`
	EmployeeID    int64     `gorm:"column:employee_id;not null"`
	DeductionType string    `gorm:"column:deduction_type;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Deduction) TableName() string {
	return "deductions"
}
