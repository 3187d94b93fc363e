package attendance_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/attendance"
)

func TestAttendanceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Service Suite")
}

type mockAttendanceRepository struct {
	entries     []*attendance.Entry
	createError error
	nextID      int64
}

func newMockAttendanceRepository() *mockAttendanceRepository {
	return &mockAttendanceRepository{nextID: 1}
}

func (m *mockAttendanceRepository) Create(entry *attendance.Entry) error {
	if m.createError != nil {
		return m.createError
	}
	for _, existing := range m.entries {
		if existing.EmployeeID == entry.EmployeeID &&
			existing.ProjectID == entry.ProjectID &&
			existing.LogDate.Equal(entry.LogDate) {
			return internal.ErrDuplicateAttendance
		}
	}
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAttendanceRepository) GetByID(id int64) (*attendance.Entry, error) {
	for _, entry := range m.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, internal.ErrAttendanceNotFound
}

func (m *mockAttendanceRepository) Update(entry *attendance.Entry) error {
	for _, existing := range m.entries {
		if existing.ID != entry.ID &&
			existing.EmployeeID == entry.EmployeeID &&
			existing.ProjectID == entry.ProjectID &&
			existing.LogDate.Equal(entry.LogDate) {
			return internal.ErrDuplicateAttendance
		}
	}
	for i, existing := range m.entries {
		if existing.ID == entry.ID {
			m.entries[i] = entry
			return nil
		}
	}
	return internal.ErrAttendanceNotFound
}

func (m *mockAttendanceRepository) Delete(id int64) error {
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return internal.ErrAttendanceNotFound
}

func (m *mockAttendanceRepository) GetByEmployee(employeeID int64, dateRange attendance.DateRange) ([]*attendance.Entry, error) {
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

func (m *mockAttendanceRepository) GetByProject(projectID int64) ([]*attendance.Entry, error) {
	result := make([]*attendance.Entry, 0)
	for _, entry := range m.entries {
		if entry.ProjectID == projectID {
			result = append(result, entry)
		}
	}
	return result, nil
}

type mockChecker struct {
	missing map[int64]bool
	err     error
}

func (m *mockChecker) Exists(id int64) error {
	if m.err != nil {
		return m.err
	}
	if m.missing[id] {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

var _ = Describe("AttendanceService", func() {
	var (
		repo      *mockAttendanceRepository
		employees *mockChecker
		projects  *mockChecker
		service   *attendance.Service
	)

	BeforeEach(func() {
		repo = newMockAttendanceRepository()
		employees = &mockChecker{missing: map[int64]bool{}}
		projects = &mockChecker{missing: map[int64]bool{}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = attendance.NewService(repo, employees, projects, 8, logger)
	})

	Describe("Record", func() {
		It("derives worked and overtime hours from the shift", func() {
			entry, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1,
				ProjectID:  2,
				LogDate:    "2026-08-24",
				TimeIn:     "07:00",
				TimeOut:    "18:00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.ID).To(Equal(int64(1)))
			Expect(entry.AttendanceHours).To(Equal(11.0))
			Expect(entry.OvertimeHours).To(Equal(3.0))
		})

		It("records no overtime for a regular day", func() {
			entry, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1,
				ProjectID:  2,
				LogDate:    "2026-08-24",
				TimeIn:     "08:00",
				TimeOut:    "16:00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.OvertimeHours).To(Equal(0.0))
		})

		It("never persists an invalid shift", func() {
			_, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1,
				ProjectID:  2,
				LogDate:    "2026-08-24",
				TimeIn:     "17:00",
				TimeOut:    "08:00",
			})
			Expect(err).To(Equal(internal.ErrInvalidShift))
			Expect(repo.entries).To(BeEmpty())
		})

		It("rejects a second entry for the same employee, project and date", func() {
			dto := attendance.RecordAttendanceDTO{
				EmployeeID: 1,
				ProjectID:  2,
				LogDate:    "2026-08-24",
				TimeIn:     "08:00",
				TimeOut:    "17:00",
			}
			_, err := service.Record(dto)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Record(dto)
			Expect(err).To(Equal(internal.ErrDuplicateAttendance))
			Expect(repo.entries).To(HaveLen(1))
		})

		It("allows the same date on a different project", func() {
			_, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "12:00",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 3, LogDate: "2026-08-24", TimeIn: "13:00", TimeOut: "17:00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.entries).To(HaveLen(2))
		})

		It("rejects an unknown employee before touching storage", func() {
			employees.missing[9] = true
			_, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 9, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "17:00",
			})
			Expect(err).To(Equal(internal.ErrEmployeeNotFound))
			Expect(repo.entries).To(BeEmpty())
		})

		It("rejects a malformed log date", func() {
			_, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "24/08/2026", TimeIn: "08:00", TimeOut: "17:00",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDate))
		})
	})

	Describe("Update", func() {
		var recorded *attendance.Entry

		BeforeEach(func() {
			var err error
			recorded, err = service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "16:00",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("recomputes worked and overtime hours from the new shift", func() {
			updated, err := service.Update(recorded.ID, attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "07:00", TimeOut: "18:00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.AttendanceHours).To(Equal(11.0))
			Expect(updated.OvertimeHours).To(Equal(3.0))

			stored, err := service.ListByEmployee(1, attendance.DateRange{})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].AttendanceHours).To(Equal(11.0))
		})

		It("rejects an invalid replacement shift and leaves the entry untouched", func() {
			_, err := service.Update(recorded.ID, attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "17:00", TimeOut: "08:00",
			})
			Expect(err).To(Equal(internal.ErrInvalidShift))

			stored, err := service.ListByEmployee(1, attendance.DateRange{})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored[0].TimeOut).To(Equal("16:00"))
			Expect(stored[0].AttendanceHours).To(Equal(8.0))
		})

		It("rejects moving the entry onto an occupied key", func() {
			other, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 3, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "17:00",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Update(other.ID, attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "17:00",
			})
			Expect(err).To(Equal(internal.ErrDuplicateAttendance))
		})

		It("reports a missing entry", func() {
			_, err := service.Update(99, attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "17:00",
			})
			Expect(err).To(Equal(internal.ErrAttendanceNotFound))
		})
	})

	Describe("DeleteEntry", func() {
		It("removes the entry", func() {
			recorded, err := service.Record(attendance.RecordAttendanceDTO{
				EmployeeID: 1, ProjectID: 2, LogDate: "2026-08-24", TimeIn: "08:00", TimeOut: "17:00",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteEntry(recorded.ID)).To(Succeed())
			Expect(repo.entries).To(BeEmpty())
		})

		It("reports a missing entry", func() {
			Expect(service.DeleteEntry(99)).To(Equal(internal.ErrAttendanceNotFound))
		})
	})

	Describe("ListByEmployee", func() {
		It("returns an empty slice when nothing is recorded", func() {
			entries, err := service.ListByEmployee(1, attendance.DateRange{})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).NotTo(BeNil())
			Expect(entries).To(BeEmpty())
		})

		It("applies the inclusive date window", func() {
			for _, date := range []string{"2026-08-24", "2026-08-25", "2026-08-28"} {
				_, err := service.Record(attendance.RecordAttendanceDTO{
					EmployeeID: 1, ProjectID: 2, LogDate: date, TimeIn: "08:00", TimeOut: "17:00",
				})
				Expect(err).NotTo(HaveOccurred())
			}

			dateRange, err := attendance.ParseDateRange("2026-08-24", "2026-08-25")
			Expect(err).NotTo(HaveOccurred())

			entries, err := service.ListByEmployee(1, dateRange)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})
	})
})

var _ = Describe("ParseDateRange", func() {
	It("leaves both bounds open for empty input", func() {
		dateRange, err := attendance.ParseDateRange("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(dateRange.Start).To(BeNil())
		Expect(dateRange.End).To(BeNil())
	})

	It("rejects an end before the start", func() {
		_, err := attendance.ParseDateRange("2026-08-25", "2026-08-24")
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDateRange))
	})
})
