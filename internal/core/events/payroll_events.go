package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePayrollCommitted = "payroll.committed"
	EventTypePayRecordCreated = "payrecord.created"
)

// PayrollCommittedEvent is published after a payroll and its pay record have
// been persisted in one transaction.
type PayrollCommittedEvent struct {
	BaseEvent
	PayrollID   int64   `json:"payroll_id"`
	EmployeeID  int64   `json:"employee_id"`
	GrossSalary float64 `json:"gross_salary"`
	NetSalary   float64 `json:"net_salary"`
	WeekStart   string  `json:"week_start"`
	WeekEnd     string  `json:"week_end"`
}

func NewPayrollCommittedEvent(payrollID, employeeID int64, gross, net float64, weekStart, weekEnd string) *PayrollCommittedEvent {
	return &PayrollCommittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePayrollCommitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payroll_id":   payrollID,
				"employee_id":  employeeID,
				"gross_salary": gross,
				"net_salary":   net,
				"week_start":   weekStart,
				"week_end":     weekEnd,
			},
		},
		PayrollID:   payrollID,
		EmployeeID:  employeeID,
		GrossSalary: gross,
		NetSalary:   net,
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
	}
}

// PayRecordCreatedEvent is published for every disbursement, whether it came
// from a payroll commit or a manual pay record entry.
type PayRecordCreatedEvent struct {
	BaseEvent
	PayRecordID     int64   `json:"pay_record_id"`
	PayrollID       int64   `json:"payroll_id"`
	EmployeeID      int64   `json:"employee_id"`
	Amount          float64 `json:"amount"`
	ReferenceNumber string  `json:"reference_number"`
}

func NewPayRecordCreatedEvent(payRecordID, payrollID, employeeID int64, amount float64, reference string) *PayRecordCreatedEvent {
	return &PayRecordCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePayRecordCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"pay_record_id":    payRecordID,
				"payroll_id":       payrollID,
				"employee_id":      employeeID,
				"amount":           amount,
				"reference_number": reference,
			},
		},
		PayRecordID:     payRecordID,
		PayrollID:       payrollID,
		EmployeeID:      employeeID,
		Amount:          amount,
		ReferenceNumber: reference,
	}
}
