package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	payrecordDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payrecord"
	payrollDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payroll"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
	"github.com/rdelacruz/payroll-management/internal/payroll"
)

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) payroll.Repository {
	return &PayrollRepository{db: db}
}

// Commit writes the payroll, its deduction charges and the pay record inside
// one transaction. The unique week index rejects a second commit for the
// same employee and week; a pay record failure rolls the whole commit back
// and surfaces under its own code so the caller knows which half broke.
func (r *PayrollRepository) Commit(p *payroll.Payroll, record *payrecord.PayRecord) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		payrollModel := payroll.ToDataModel(p)
		if err := tx.Create(payrollModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return internal.ErrDuplicatePayroll
			}
			return internal.NewPersistenceError(err)
		}
		p.ID = payrollModel.ID

		for _, applied := range p.Deductions {
			link := &payrollDatamodel.PayrollDeduction{
				PayrollID:       p.ID,
				DeductionID:     applied.DeductionID,
				DeductionAmount: applied.Amount,
			}
			if err := tx.Create(link).Error; err != nil {
				return internal.NewPersistenceError(err)
			}
		}

		record.PayrollID = p.ID
		recordModel := payrecord.ToDataModel(record)
		if err := tx.Create(recordModel).Error; err != nil {
			return internal.ErrPayRecordFailed.WithCause(err)
		}
		record.ID = recordModel.ID

		return nil
	})
	if err != nil {
		p.ID = 0
		record.ID = 0
		record.PayrollID = 0
	}
	return err
}

func (r *PayrollRepository) GetByID(id int64) (*payroll.Payroll, error) {
	var model payrollDatamodel.Payroll
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPayrollNotFound
		}
		return nil, internal.NewPersistenceError(err)
	}

	p := payroll.FromDataModel(&model)
	if err := r.loadDeductions(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PayrollRepository) GetByEmployee(employeeID int64) ([]*payroll.Payroll, error) {
	var models []*payrollDatamodel.Payroll
	err := r.db.Where("employee_id = ?", employeeID).Order("week_start ASC").Find(&models).Error
	if err != nil {
		return nil, internal.NewPersistenceError(err)
	}
	return payroll.FromDataModelSlice(models), nil
}

func (r *PayrollRepository) Delete(id int64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payroll_id = ?", id).Delete(&payrollDatamodel.PayrollDeduction{}).Error; err != nil {
			return internal.NewPersistenceError(err)
		}
		if err := tx.Where("payroll_id = ?", id).Delete(&payrecordDatamodel.PayRecord{}).Error; err != nil {
			return internal.NewPersistenceError(err)
		}

		result := tx.Delete(&payrollDatamodel.Payroll{}, id)
		if result.Error != nil {
			return internal.NewPersistenceError(result.Error)
		}
		if result.RowsAffected == 0 {
			return internal.ErrPayrollNotFound
		}
		return nil
	})
	return err
}

// deductionRow carries the charge with its registered label joined in.
type deductionRow struct {
	DeductionID     int64
	DeductionType   string
	DeductionAmount float64
}

func (r *PayrollRepository) loadDeductions(p *payroll.Payroll) error {
	var rows []deductionRow
	err := r.db.Model(&payrollDatamodel.PayrollDeduction{}).
		Select("payroll_deductions.deduction_id, deductions.deduction_type, payroll_deductions.deduction_amount").
		Joins("JOIN deductions ON deductions.id = payroll_deductions.deduction_id").
		Where("payroll_deductions.payroll_id = ?", p.ID).
		Order("payroll_deductions.deduction_id ASC").
		Scan(&rows).Error
	if err != nil {
		return internal.NewPersistenceError(err)
	}

	for _, row := range rows {
		p.Deductions = append(p.Deductions, payroll.AppliedDeduction{
			DeductionID:   row.DeductionID,
			DeductionType: row.DeductionType,
			Amount:        row.DeductionAmount,
		})
	}
	return nil
}
