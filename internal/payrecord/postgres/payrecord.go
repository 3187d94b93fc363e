package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	payrecordDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payrecord"
	payrollDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payroll"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
)

type PayRecordRepository struct {
	db *gorm.DB
}

func NewPayRecordRepository(db *gorm.DB) payrecord.Repository {
	return &PayRecordRepository{db: db}
}

func (r *PayRecordRepository) Create(record *payrecord.PayRecord) error {
	model := payrecord.ToDataModel(record)
	if err := r.db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrDuplicateReference
		}
		return internal.NewPersistenceError(err)
	}
	record.ID = model.ID
	return nil
}

func (r *PayRecordRepository) GetByID(id int64) (*payrecord.PayRecord, error) {
	var model payrecordDatamodel.PayRecord
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPayRecordNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return payrecord.FromDataModel(&model), nil
}

func (r *PayRecordRepository) GetByEmployee(employeeID int64) ([]*payrecord.PayRecord, error) {
	var models []*payrecordDatamodel.PayRecord
	err := r.db.Where("employee_id = ?", employeeID).Order("date_paid ASC, id ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return payrecord.FromDataModelSlice(models), nil
}

func (r *PayRecordRepository) GetByPayroll(payrollID int64) ([]*payrecord.PayRecord, error) {
	var models []*payrecordDatamodel.PayRecord
	err := r.db.Where("payroll_id = ?", payrollID).Order("date_paid ASC, id ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return payrecord.FromDataModelSlice(models), nil
}

func (r *PayRecordRepository) GetPayrollEmployee(payrollID int64) (int64, error) {
	var model payrollDatamodel.Payroll
	err := r.db.Select("id, employee_id").Where("id = ?", payrollID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, internal.ErrPayrollNotFound
		}
		return 0, internal.NewPersistenceError(err)
	}
	return model.EmployeeID, nil
}
