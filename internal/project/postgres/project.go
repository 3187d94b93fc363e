package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	attendanceDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/attendance"
	projectDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/project"
	"github.com/rdelacruz/payroll-management/internal/project"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(p *project.Project) error {
	model := project.ToDataModel(p)
	if err := r.db.Create(model).Error; err != nil {
		return internal.NewPersistenceError(err)
	}
	p.ID = model.ID
	return nil
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var model projectDatamodel.Project
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProjectNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return project.FromDataModel(&model), nil
}

func (r *ProjectRepository) GetAll() ([]*project.Project, error) {
	var models []*projectDatamodel.Project
	err := r.db.Order("start_date ASC, project_name ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return project.FromDataModelSlice(models), nil
}

func (r *ProjectRepository) Exists(id int64) error {
	var count int64
	if err := r.db.Model(&projectDatamodel.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return internal.NewPersistenceError(err)
	}
	if count == 0 {
		return internal.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(id int64) error {
	var attendanceCount int64
	if err := r.db.Model(&attendanceDatamodel.Log{}).Where("project_id = ?", id).Count(&attendanceCount).Error; err != nil {
		return internal.NewPersistenceError(err)
	}
	if attendanceCount > 0 {
		return internal.ErrProjectReferenced
	}

	result := r.db.Delete(&projectDatamodel.Project{}, id)
	if result.Error != nil {
		return internal.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrProjectNotFound
	}
	return nil
}
