package postgres

import (
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	deductionDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/deduction"
	payrecordDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payrecord"
	payrollDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/payroll"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
	"github.com/rdelacruz/payroll-management/internal/payroll"
)

func TestPayrollRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Payroll Repository Suite")
}

var _ = Describe("PayrollRepository", func() {
	var (
		db   *gorm.DB
		repo payroll.Repository
	)

	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	newPayroll := func() *payroll.Payroll {
		return &payroll.Payroll{
			EmployeeID:  1,
			GrossSalary: 5000,
			NetSalary:   4800,
			WeekStart:   weekStart,
			WeekEnd:     weekEnd,
			CreatedAt:   time.Now(),
		}
	}

	newRecord := func(reference string) *payrecord.PayRecord {
		return &payrecord.PayRecord{
			EmployeeID:      1,
			DatePaid:        weekEnd,
			Amount:          4800,
			ReferenceNumber: reference,
			CreatedAt:       time.Now(),
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		// A pooled :memory: database exists per connection; pin the pool to
		// one so every session, including concurrent ones, sees the same DB.
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		err = db.AutoMigrate(
			&deductionDatamodel.Deduction{},
			&payrollDatamodel.Payroll{},
			&payrollDatamodel.PayrollDeduction{},
			&payrecordDatamodel.PayRecord{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = NewPayrollRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Commit", func() {
		It("persists the payroll and its pay record together", func() {
			p := newPayroll()
			record := newRecord("PAY-20260828-AAAA1111")

			Expect(repo.Commit(p, record)).To(Succeed())
			Expect(p.ID).NotTo(BeZero())
			Expect(record.ID).NotTo(BeZero())
			Expect(record.PayrollID).To(Equal(p.ID))

			var payrollCount, recordCount int64
			db.Model(&payrollDatamodel.Payroll{}).Count(&payrollCount)
			db.Model(&payrecordDatamodel.PayRecord{}).Count(&recordCount)
			Expect(payrollCount).To(Equal(int64(1)))
			Expect(recordCount).To(Equal(int64(1)))
		})

		It("persists deduction charges alongside the payroll", func() {
			registered := &deductionDatamodel.Deduction{EmployeeID: 1, DeductionType: "sss", CreatedAt: time.Now()}
			Expect(db.Create(registered).Error).To(Succeed())

			p := newPayroll()
			p.Deductions = []payroll.AppliedDeduction{{DeductionID: registered.ID, Amount: 200}}

			Expect(repo.Commit(p, newRecord("PAY-20260828-BBBB2222"))).To(Succeed())

			loaded, err := repo.GetByID(p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Deductions).To(HaveLen(1))
			Expect(loaded.Deductions[0].DeductionType).To(Equal("sss"))
			Expect(loaded.Deductions[0].Amount).To(Equal(200.0))
		})

		It("rejects a second payroll for the same employee and week", func() {
			Expect(repo.Commit(newPayroll(), newRecord("PAY-20260828-CCCC3333"))).To(Succeed())

			err := repo.Commit(newPayroll(), newRecord("PAY-20260828-DDDD4444"))
			Expect(err).To(Equal(internal.ErrDuplicatePayroll))

			var payrollCount int64
			db.Model(&payrollDatamodel.Payroll{}).Count(&payrollCount)
			Expect(payrollCount).To(Equal(int64(1)))
		})

		It("lets exactly one of two racing commits through", func() {
			results := make(chan error, 2)
			var wg sync.WaitGroup

			for _, reference := range []string{"PAY-20260828-RACE0001", "PAY-20260828-RACE0002"} {
				wg.Add(1)
				go func(ref string) {
					defer GinkgoRecover()
					defer wg.Done()
					results <- repo.Commit(newPayroll(), newRecord(ref))
				}(reference)
			}
			wg.Wait()
			close(results)

			var failures []error
			for err := range results {
				if err != nil {
					failures = append(failures, err)
				}
			}
			Expect(failures).To(HaveLen(1))
			Expect(failures[0]).To(Equal(internal.ErrDuplicatePayroll))

			var payrollCount, recordCount int64
			db.Model(&payrollDatamodel.Payroll{}).Count(&payrollCount)
			db.Model(&payrecordDatamodel.PayRecord{}).Count(&recordCount)
			Expect(payrollCount).To(Equal(int64(1)))
			Expect(recordCount).To(Equal(int64(1)))
		})

		It("rolls the payroll back when the pay record cannot be written", func() {
			Expect(repo.Commit(newPayroll(), newRecord("PAY-20260828-EEEE5555"))).To(Succeed())

			// Same reference for a different week trips the unique index on
			// pay_records after the payroll insert succeeded.
			p := newPayroll()
			p.WeekStart = weekStart.AddDate(0, 0, 7)
			p.WeekEnd = weekEnd.AddDate(0, 0, 7)

			err := repo.Commit(p, newRecord("PAY-20260828-EEEE5555"))
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodePayRecordFailed))

			var payrollCount, recordCount int64
			db.Model(&payrollDatamodel.Payroll{}).Count(&payrollCount)
			db.Model(&payrecordDatamodel.PayRecord{}).Count(&recordCount)
			Expect(payrollCount).To(Equal(int64(1)))
			Expect(recordCount).To(Equal(int64(1)))
		})
	})

	Describe("GetByEmployee", func() {
		It("returns payrolls ordered by week start", func() {
			later := newPayroll()
			later.WeekStart = weekStart.AddDate(0, 0, 7)
			later.WeekEnd = weekEnd.AddDate(0, 0, 7)
			Expect(repo.Commit(later, newRecord("PAY-20260904-AAAA1111"))).To(Succeed())
			Expect(repo.Commit(newPayroll(), newRecord("PAY-20260828-FFFF6666"))).To(Succeed())

			payrolls, err := repo.GetByEmployee(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(payrolls).To(HaveLen(2))
			Expect(payrolls[0].WeekStart.Before(payrolls[1].WeekStart)).To(BeTrue())
		})

		It("returns an empty slice for an employee without payrolls", func() {
			payrolls, err := repo.GetByEmployee(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(payrolls).NotTo(BeNil())
			Expect(payrolls).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("removes the payroll with its linked records", func() {
			p := newPayroll()
			Expect(repo.Commit(p, newRecord("PAY-20260828-GGGG7777"))).To(Succeed())

			Expect(repo.Delete(p.ID)).To(Succeed())

			var recordCount int64
			db.Model(&payrecordDatamodel.PayRecord{}).Count(&recordCount)
			Expect(recordCount).To(BeZero())

			_, err := repo.GetByID(p.ID)
			Expect(err).To(Equal(internal.ErrPayrollNotFound))
		})

		It("reports a missing payroll", func() {
			Expect(repo.Delete(99)).To(Equal(internal.ErrPayrollNotFound))
		})
	})
})
