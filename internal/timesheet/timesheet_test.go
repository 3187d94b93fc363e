package timesheet_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/timesheet"
)

func TestTimesheet(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Timesheet Suite")
}

var _ = Describe("ComputeHours", func() {
	It("computes a regular working day", func() {
		hours, err := timesheet.ComputeHours("08:00", "17:00")
		Expect(err).NotTo(HaveOccurred())
		Expect(hours).To(Equal(9.0))
	})

	It("keeps fractional hours from minute-level punches", func() {
		hours, err := timesheet.ComputeHours("08:00", "12:30")
		Expect(err).NotTo(HaveOccurred())
		Expect(hours).To(Equal(4.5))
	})

	It("rejects a shift ending before it starts", func() {
		_, err := timesheet.ComputeHours("17:00", "08:00")
		Expect(err).To(Equal(internal.ErrInvalidShift))
	})

	It("rejects a zero-length shift", func() {
		_, err := timesheet.ComputeHours("08:00", "08:00")
		Expect(err).To(Equal(internal.ErrInvalidShift))
	})

	It("rejects malformed time in", func() {
		_, err := timesheet.ComputeHours("8am", "17:00")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
	})

	It("rejects malformed time out", func() {
		_, err := timesheet.ComputeHours("08:00", "25:61")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
	})
})

var _ = Describe("OvertimeHours", func() {
	It("is zero at or below the regular day", func() {
		Expect(timesheet.OvertimeHours(8, 8)).To(Equal(0.0))
		Expect(timesheet.OvertimeHours(6.5, 8)).To(Equal(0.0))
	})

	It("returns the hours past the regular day", func() {
		Expect(timesheet.OvertimeHours(10, 8)).To(Equal(2.0))
		Expect(timesheet.OvertimeHours(8.5, 8)).To(Equal(0.5))
	})
})
