package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	deductionDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/deduction"
	"github.com/rdelacruz/payroll-management/internal/deduction"
)

type DeductionRepository struct {
	db *gorm.DB
}

func NewDeductionRepository(db *gorm.DB) deduction.Repository {
	return &DeductionRepository{db: db}
}

func (r *DeductionRepository) Create(d *deduction.Deduction) error {
	model := &deductionDatamodel.Deduction{
		EmployeeID:    d.EmployeeID,
		DeductionType: d.DeductionType,
		CreatedAt:     d.CreatedAt,
	}
	if err := r.db.Create(model).Error; err != nil {
		return internal.NewPersistenceError(err)
	}
	d.ID = model.ID
	return nil
}

func (r *DeductionRepository) GetByEmployee(employeeID int64) ([]*deduction.Deduction, error) {
	var models []*deductionDatamodel.Deduction
	err := r.db.Where("employee_id = ?", employeeID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return deduction.FromDataModelSlice(models), nil
}

func (r *DeductionRepository) GetByID(id int64) (*deduction.Deduction, error) {
	var model deductionDatamodel.Deduction
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrDeductionNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return deduction.FromDataModel(&model), nil
}
