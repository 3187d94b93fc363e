package project

import "time"

type Project struct {
	ID        int64      `gorm:"primaryKey"`
	Name      string     `gorm:"column:project_name;not null"`
	StartDate time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate   *time.Time `gorm:"column:end_date;type:date"`
	Budget    *float64   `gorm:"column:budget"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
