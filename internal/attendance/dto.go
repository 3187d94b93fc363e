package attendance

import (
	"fmt"
	"time"

	"github.com/rdelacruz/payroll-management/internal"
)

// DateLayout is the accepted calendar-date format for log dates and range
// bounds.
const DateLayout = "2006-01-02"

// RecordAttendanceDTO is the request payload for logging a shift.
type RecordAttendanceDTO struct {
	EmployeeID int64  `json:"employee_id"`
	ProjectID  int64  `json:"project_id"`
	LogDate    string `json:"log_date"`
	TimeIn     string `json:"time_in"`
	TimeOut    string `json:"time_out"`
}

// Parse validates the payload and returns the log date. Shift times are
// validated later by the hours computation, so only their presence is
// checked here.
func (dto RecordAttendanceDTO) Parse() (time.Time, error) {
	if dto.EmployeeID <= 0 {
		return time.Time{}, internal.NewValidationError("employee_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.ProjectID <= 0 {
		return time.Time{}, internal.NewValidationError("project_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.TimeIn == "" || dto.TimeOut == "" {
		return time.Time{}, internal.NewValidationError("time_in and time_out are required", internal.ErrCodeValidationFailed)
	}

	date, err := time.Parse(DateLayout, dto.LogDate)
	if err != nil {
		return time.Time{}, internal.NewValidationError(
			fmt.Sprintf("log_date must be %s", DateLayout), internal.ErrCodeInvalidDate)
	}
	return date, nil
}

// DateRange is an optional inclusive window on log dates. A nil bound leaves
// that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange builds a DateRange from optional query strings. An empty
// string leaves the bound open.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	var dr DateRange

	if startStr != "" {
		start, err := time.Parse(DateLayout, startStr)
		if err != nil {
			return dr, internal.NewValidationError(
				fmt.Sprintf("start_date must be %s", DateLayout), internal.ErrCodeInvalidDate)
		}
		dr.Start = &start
	}

	if endStr != "" {
		end, err := time.Parse(DateLayout, endStr)
		if err != nil {
			return dr, internal.NewValidationError(
				fmt.Sprintf("end_date must be %s", DateLayout), internal.ErrCodeInvalidDate)
		}
		dr.End = &end
	}

	if dr.Start != nil && dr.End != nil && dr.End.Before(*dr.Start) {
		return dr, internal.NewValidationError("end_date must not precede start_date", internal.ErrCodeInvalidDateRange)
	}
	return dr, nil
}
