package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	attendanceDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/employee"
	payrollDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payroll"
	"github.com/rdelacruz/payroll-management/internal/employee"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	model := employee.ToDataModel(e)
	if err := r.db.Create(model).Error; err != nil {
		return internal.NewPersistenceError(err)
	}
	e.ID = model.ID
	return nil
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var model employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}
	return employee.FromDataModel(&model), nil
}

func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var models []*employeeDatamodel.Employee
	err := r.db.Order("last_name ASC, first_name ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return employee.FromDataModelSlice(models), nil
}

func (r *EmployeeRepository) Update(e *employee.Employee) error {
	result := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"last_name":  e.LastName,
			"first_name": e.FirstName,
			"daily_rate": e.DailyRate,
			"updated_at": e.UpdatedAt,
		})
	if result.Error != nil {
		return internal.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

// Exists reports referential validity for writers in other packages that
// only need to know the employee is real.
func (r *EmployeeRepository) Exists(id int64) error {
	var count int64
	if err := r.db.Model(&employeeDatamodel.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return internal.NewPersistenceError(err)
	}
	if count == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee unless attendance or payroll rows still
// reference them.
func (r *EmployeeRepository) Delete(id int64) error {
	var attendanceCount int64
	if err := r.db.Model(&attendanceDatamodel.Log{}).Where("employee_id = ?", id).Count(&attendanceCount).Error; err != nil {
		return internal.NewPersistenceError(err)
	}

	var payrollCount int64
	if err := r.db.Model(&payrollDatamodel.Payroll{}).Where("employee_id = ?", id).Count(&payrollCount).Error; err != nil {
		return internal.NewPersistenceError(err)
	}

	if attendanceCount > 0 || payrollCount > 0 {
		return internal.ErrEmployeeReferenced
	}

	result := r.db.Delete(&employeeDatamodel.Employee{}, id)
	if result.Error != nil {
		return internal.NewPersistenceError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}
