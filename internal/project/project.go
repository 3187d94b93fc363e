package project

import (
	"time"

	projectDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/project"
)

type Project struct {
	ID        int64      `json:"id"`
	Name      string     `json:"project_name"`
	StartDate time.Time  `json:"project_start"`
	EndDate   *time.Time `json:"project_end,omitempty"`
	Budget    *float64   `json:"budget,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToDataModel(p *Project) *projectDatamodel.Project {
	return &projectDatamodel.Project{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Budget:    p.Budget,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDataModel(p *projectDatamodel.Project) *Project {
	return &Project{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Budget:    p.Budget,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDataModelSlice(projects []*projectDatamodel.Project) []*Project {
	result := make([]*Project, len(projects))
	for i, p := range projects {
		result[i] = FromDataModel(p)
	}
	return result
}
