package payrecord

import "time"

// PayRecord is proof of an actual disbursement, distinct from the payroll
// computation it pays out.
type PayRecord struct {
	ID              int64     `gorm:"primaryKey"`
	PayrollID       int64     `gorm:"column:payroll_id;not null"`
	EmployeeID      int64     `gorm:"column:employee_id;not null"`
	DatePaid        time.Time `gorm:"column:date_paid;type:date;not null"`
	Amount          float64   `gorm:"column:amount;not null"`
	ReferenceNumber string    `gorm:"column:reference_number;not null;uniqueIndex"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (PayRecord) TableName() string {
	return "pay_records"
}
