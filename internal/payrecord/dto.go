package payrecord

import (
	"fmt"
	"time"

	"github.com/rdelacruz/payroll-management/internal"
)

const DateLayout = "2006-01-02"

// CreatePayRecordDTO registers a disbursement against an existing payroll,
// for payouts made outside the commit path (a reissued cheque, a correction
// entered by hand). ReferenceNumber is minted when omitted.
type CreatePayRecordDTO struct {
	PayrollID       int64   `json:"payroll_id"`
	DatePaid        string  `json:"date_paid"`
	Amount          float64 `json:"amount"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
}

func (dto CreatePayRecordDTO) Parse() (time.Time, error) {
	if dto.PayrollID <= 0 {
		return time.Time{}, internal.NewValidationError("payroll_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return time.Time{}, internal.NewValidationError("amount must be positive", internal.ErrCodeInvalidAmount)
	}

	paid, err := time.Parse(DateLayout, dto.DatePaid)
	if err != nil {
		return time.Time{}, internal.NewValidationError(
			fmt.Sprintf("date_paid must be %s", DateLayout), internal.ErrCodeInvalidDate)
	}
	return paid, nil
}
