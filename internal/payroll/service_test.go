package payroll_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/attendance"
	"github.com/rdelacruz/payroll-management/internal/core/events"
	"github.com/rdelacruz/payroll-management/internal/deduction"
	"github.com/rdelacruz/payroll-management/internal/employee"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
	"github.com/rdelacruz/payroll-management/internal/payroll"
)

func TestPayrollService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Payroll Service Suite")
}

type mockPayrollRepository struct {
	payrolls    map[int64]*payroll.Payroll
	records     []*payrecord.PayRecord
	commitError error
	nextID      int64
}

func newMockPayrollRepository() *mockPayrollRepository {
	return &mockPayrollRepository{payrolls: make(map[int64]*payroll.Payroll), nextID: 1}
}

func (m *mockPayrollRepository) Commit(p *payroll.Payroll, record *payrecord.PayRecord) error {
	if m.commitError != nil {
		return m.commitError
	}
	for _, existing := range m.payrolls {
		if existing.EmployeeID == p.EmployeeID &&
			existing.WeekStart.Equal(p.WeekStart) &&
			existing.WeekEnd.Equal(p.WeekEnd) {
			return internal.ErrDuplicatePayroll
		}
	}
	p.ID = m.nextID
	m.nextID++
	m.payrolls[p.ID] = p

	record.PayrollID = p.ID
	record.ID = p.ID
	m.records = append(m.records, record)
	return nil
}

func (m *mockPayrollRepository) GetByID(id int64) (*payroll.Payroll, error) {
	p, ok := m.payrolls[id]
	if !ok {
		return nil, internal.ErrPayrollNotFound
	}
	return p, nil
}

func (m *mockPayrollRepository) GetByEmployee(employeeID int64) ([]*payroll.Payroll, error) {
	result := make([]*payroll.Payroll, 0)
	for _, p := range m.payrolls {
		if p.EmployeeID == employeeID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPayrollRepository) Delete(id int64) error {
	if _, ok := m.payrolls[id]; !ok {
		return internal.ErrPayrollNotFound
	}
	delete(m.payrolls, id)
	return nil
}

type mockAttendanceSource struct {
	entries []*attendance.Entry
}

func (m *mockAttendanceSource) GetByEmployee(employeeID int64, dateRange attendance.DateRange) ([]*attendance.Entry, error) {
	result := make([]*attendance.Entry, 0)
	for _, entry := range m.entries {
		if entry.EmployeeID != employeeID {
			continue
		}
		if dateRange.Start != nil && entry.LogDate.Before(*dateRange.Start) {
			continue
		}
		if dateRange.End != nil && entry.LogDate.After(*dateRange.End) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

type mockEmployeeDirectory struct {
	employees map[int64]*employee.Employee
}

func (m *mockEmployeeDirectory) GetByID(id int64) (*employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

type mockDeductionDirectory struct {
	deductions map[int64]*deduction.Deduction
}

func (m *mockDeductionDirectory) GetByID(id int64) (*deduction.Deduction, error) {
	d, ok := m.deductions[id]
	if !ok {
		return nil, internal.ErrDeductionNotFound
	}
	return d, nil
}

type mockEventPublisher struct {
	published []events.Event
}

func (m *mockEventPublisher) Publish(ctx context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

func mustDate(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	Expect(err).NotTo(HaveOccurred())
	return date
}

func entryOn(employeeID int64, date string, hours, overtime float64) *attendance.Entry {
	return &attendance.Entry{
		EmployeeID:      employeeID,
		ProjectID:       1,
		LogDate:         mustDate(date),
		AttendanceHours: hours,
		OvertimeHours:   overtime,
	}
}

var _ = Describe("PayrollService", func() {
	var (
		repo       *mockPayrollRepository
		source     *mockAttendanceSource
		employees  *mockEmployeeDirectory
		deductions *mockDeductionDirectory
		bus        *mockEventPublisher
		service    *payroll.Service
	)

	BeforeEach(func() {
		repo = newMockPayrollRepository()
		source = &mockAttendanceSource{}
		employees = &mockEmployeeDirectory{employees: map[int64]*employee.Employee{
			1: {ID: 1, LastName: "Santos", FirstName: "Maria", DailyRate: 1000},
			2: {ID: 2, LastName: "Dela Cruz", FirstName: "Juan", DailyRate: 800},
		}}
		deductions = &mockDeductionDirectory{deductions: map[int64]*deduction.Deduction{
			10: {ID: 10, EmployeeID: 1, DeductionType: "sss"},
			11: {ID: 11, EmployeeID: 2, DeductionType: "loan"},
		}}
		bus = &mockEventPublisher{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		cfg := internal.PayrollConfig{RegularHoursPerDay: 8, OvertimeMultiplier: 1.25}
		refGen := func() string { return "PAY-TEST-0001" }
		service = payroll.NewService(repo, source, employees, deductions, bus, cfg, refGen, logger)
	})

	week := payroll.CalculatePayrollDTO{
		EmployeeID: 1,
		WeekStart:  "2026-08-24",
		WeekEnd:    "2026-08-28",
	}

	Describe("Calculate", func() {
		It("pays the daily rate per distinct day worked", func() {
			for _, date := range []string{"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28"} {
				source.entries = append(source.entries, entryOn(1, date, 8, 0))
			}

			computation, err := service.Calculate(week)
			Expect(err).NotTo(HaveOccurred())
			Expect(computation.DaysWorked).To(Equal(5))
			Expect(computation.RegularPay).To(Equal(5000.0))
			Expect(computation.GrossSalary).To(Equal(5000.0))
			Expect(computation.NetSalary).To(Equal(5000.0))
		})

		It("counts a day once across multiple project entries", func() {
			source.entries = append(source.entries,
				entryOn(1, "2026-08-24", 4, 0),
				entryOn(1, "2026-08-24", 4, 0))

			computation, err := service.Calculate(week)
			Expect(err).NotTo(HaveOccurred())
			Expect(computation.DaysWorked).To(Equal(1))
			Expect(computation.TotalHours).To(Equal(8.0))
			Expect(computation.RegularPay).To(Equal(1000.0))
		})

		It("pays overtime at the premium hourly rate", func() {
			source.entries = append(source.entries, entryOn(2, "2026-08-24", 10, 2))

			computation, err := service.Calculate(payroll.CalculatePayrollDTO{
				EmployeeID: 2,
				WeekStart:  "2026-08-24",
				WeekEnd:    "2026-08-28",
			})
			Expect(err).NotTo(HaveOccurred())
			// 2h at 800/8 * 1.25
			Expect(computation.OvertimePay).To(Equal(250.0))
			Expect(computation.GrossSalary).To(Equal(1050.0))
		})

		It("subtracts deduction charges without clamping at zero", func() {
			source.entries = append(source.entries, entryOn(1, "2026-08-24", 8, 0))

			dto := week
			dto.Deductions = []payroll.DeductionChargeDTO{{DeductionID: 10, Amount: 1200}}

			computation, err := service.Calculate(dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(computation.TotalDeductions).To(Equal(1200.0))
			Expect(computation.NetSalary).To(Equal(-200.0))
		})

		It("reports no data for a week without attendance", func() {
			_, err := service.Calculate(week)
			Expect(err).To(Equal(internal.ErrNoAttendanceData))
		})

		It("ignores entries outside the requested week", func() {
			source.entries = append(source.entries,
				entryOn(1, "2026-08-21", 8, 0),
				entryOn(1, "2026-08-24", 8, 0))

			computation, err := service.Calculate(week)
			Expect(err).NotTo(HaveOccurred())
			Expect(computation.DaysWorked).To(Equal(1))
		})

		It("rejects a deduction registered to another employee", func() {
			source.entries = append(source.entries, entryOn(1, "2026-08-24", 8, 0))

			dto := week
			dto.Deductions = []payroll.DeductionChargeDTO{{DeductionID: 11, Amount: 100}}

			_, err := service.Calculate(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("rejects an inverted week", func() {
			_, err := service.Calculate(payroll.CalculatePayrollDTO{
				EmployeeID: 1,
				WeekStart:  "2026-08-28",
				WeekEnd:    "2026-08-24",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDateRange))
		})

		It("rejects an unknown employee", func() {
			_, err := service.Calculate(payroll.CalculatePayrollDTO{
				EmployeeID: 99,
				WeekStart:  "2026-08-24",
				WeekEnd:    "2026-08-28",
			})
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
		})
	})

	Describe("Commit", func() {
		commitWeek := payroll.CommitPayrollDTO{
			CalculatePayrollDTO: payroll.CalculatePayrollDTO{
				EmployeeID: 1,
				WeekStart:  "2026-08-24",
				WeekEnd:    "2026-08-28",
			},
			DatePaid: "2026-08-29",
		}

		It("persists the payroll with a pay record for the net salary", func() {
			source.entries = append(source.entries, entryOn(1, "2026-08-24", 8, 0))

			p, record, err := service.Commit(context.Background(), commitWeek)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).NotTo(BeZero())
			Expect(record.PayrollID).To(Equal(p.ID))
			Expect(record.Amount).To(Equal(p.NetSalary))
			Expect(record.ReferenceNumber).To(Equal("PAY-TEST-0001"))
			Expect(record.DatePaid).To(Equal(mustDate("2026-08-29")))
		})

		It("rejects a second commit for the same employee and week", func() {
			source.entries = append(source.entries, entryOn(1, "2026-08-24", 8, 0))

			_, _, err := service.Commit(context.Background(), commitWeek)
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.Commit(context.Background(), commitWeek)
			Expect(err).To(Equal(internal.ErrDuplicatePayroll))
			Expect(repo.payrolls).To(HaveLen(1))
			Expect(repo.records).To(HaveLen(1))
		})

		It("commits nothing for a week without attendance", func() {
			_, _, err := service.Commit(context.Background(), commitWeek)
			Expect(err).To(Equal(internal.ErrNoAttendanceData))
			Expect(repo.payrolls).To(BeEmpty())
			Expect(repo.records).To(BeEmpty())
		})

		It("publishes commit and disbursement events", func() {
			source.entries = append(source.entries, entryOn(1, "2026-08-24", 8, 0))

			_, _, err := service.Commit(context.Background(), commitWeek)
			Expect(err).NotTo(HaveOccurred())

			Expect(bus.published).To(HaveLen(2))
			Expect(bus.published[0].EventType()).To(Equal(events.EventTypePayrollCommitted))
			Expect(bus.published[1].EventType()).To(Equal(events.EventTypePayRecordCreated))
		})

		It("publishes nothing when the commit fails", func() {
			source.entries = append(source.entries, entryOn(1, "2026-08-24", 8, 0))
			repo.commitError = internal.ErrPayRecordFailed

			_, _, err := service.Commit(context.Background(), commitWeek)
			Expect(err).To(Equal(internal.ErrPayRecordFailed))
			Expect(bus.published).To(BeEmpty())
		})
	})
})
