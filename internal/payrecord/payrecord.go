package payrecord

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	payrecordDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payrecord"
)

// ReferenceGenerator mints the unique disbursement reference for a pay
// record. Injected so tests can pin it.
type ReferenceGenerator func() string

func DefaultReferenceGenerator() string {
	return fmt.Sprintf("PAY-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.New().String()[:8]))
}

// PayRecord is proof that a payroll was actually disbursed. The reference
// number is the handle used to reconcile against bank statements, so it is
// unique across all records.
type PayRecord struct {
	ID              int64     `json:"id"`
	PayrollID       int64     `json:"payroll_id"`
	EmployeeID      int64     `json:"employee_id"`
	DatePaid        time.Time `json:"date_paid"`
	Amount          float64   `json:"amount"`
	ReferenceNumber string    `json:"reference_number"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToDataModel(p *PayRecord) *payrecordDatamodel.PayRecord {
	return &payrecordDatamodel.PayRecord{
		ID:              p.ID,
		PayrollID:       p.PayrollID,
		EmployeeID:      p.EmployeeID,
		DatePaid:        p.DatePaid,
		Amount:          p.Amount,
		ReferenceNumber: p.ReferenceNumber,
		CreatedAt:       p.CreatedAt,
	}
}

func FromDataModel(m *payrecordDatamodel.PayRecord) *PayRecord {
	return &PayRecord{
		ID:              m.ID,
		PayrollID:       m.PayrollID,
		EmployeeID:      m.EmployeeID,
		DatePaid:        m.DatePaid,
		Amount:          m.Amount,
		ReferenceNumber: m.ReferenceNumber,
		CreatedAt:       m.CreatedAt,
	}
}

func FromDataModelSlice(models []*payrecordDatamodel.PayRecord) []*PayRecord {
	records := make([]*PayRecord, 0, len(models))
	for _, m := range models {
		records = append(records, FromDataModel(m))
	}
	return records
}
