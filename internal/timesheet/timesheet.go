// Package timesheet derives worked and overtime hours from a pair of
// wall-clock punches. It is a pure leaf package; pay policy (the regular-day
// threshold) comes from the caller.
package timesheet

import (
	"time"

	"github.com/rdelacruz/payroll-management/internal"
)

// TimeLayout is the accepted punch format: 24-hour wall clock, no seconds.
const TimeLayout = "15:04"

// ComputeHours returns the elapsed hours between two same-day punches.
// Overnight shifts are not supported: a time-out at or before time-in is an
// invalid shift.
func ComputeHours(timeIn, timeOut string) (float64, error) {
	in, err := time.Parse(TimeLayout, timeIn)
	if err != nil {
		return 0, internal.NewValidationError("time_in must be HH:MM in 24-hour format", internal.ErrCodeValidationFailed)
	}

	out, err := time.Parse(TimeLayout, timeOut)
	if err != nil {
		return 0, internal.NewValidationError("time_out must be HH:MM in 24-hour format", internal.ErrCodeValidationFailed)
	}

	if !out.After(in) {
		return 0, internal.ErrInvalidShift
	}

	return out.Sub(in).Seconds() / 3600, nil
}

// OvertimeHours returns the hours worked past the regular-day threshold,
// never negative.
func OvertimeHours(worked, regularHours float64) float64 {
	if worked <= regularHours {
		return 0
	}
	return worked - regularHours
}
