package employee

import "time"

// Employee is the persistence model for the employee directory.
type Employee struct {
	ID        int64     `gorm:"primaryKey"`
	LastName  string    `gorm:"column:last_name;not null"`
	FirstName string    `gorm:"column:first_name;not null"`
	DailyRate float64   `gorm:"column:daily_rate;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
