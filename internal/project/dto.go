package project

import (
	"time"

	"github.com/rdelacruz/payroll-management/internal"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// CreateProjectDTO represents the request payload for creating a project.
// Dates travel as YYYY-MM-DD strings.
type CreateProjectDTO struct {
	Name      string   `json:"project_name"`
	StartDate string   `json:"project_start"`
	EndDate   string   `json:"project_end,omitempty"`
	Budget    *float64 `json:"budget,omitempty"`
}

// Parse validates the DTO and returns the parsed date fields.
func (dto CreateProjectDTO) Parse() (start time.Time, end *time.Time, err error) {
	if dto.Name == "" {
		return time.Time{}, nil, internal.NewValidationError("project_name is required", internal.ErrCodeValidationFailed)
	}

	start, err = time.Parse(DateLayout, dto.StartDate)
	if err != nil {
		return time.Time{}, nil, internal.NewValidationError("project_start must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}

	if dto.EndDate != "" {
		parsed, err := time.Parse(DateLayout, dto.EndDate)
		if err != nil {
			return time.Time{}, nil, internal.NewValidationError("project_end must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		if parsed.Before(start) {
			return time.Time{}, nil, internal.NewValidationError("project_end must not be before project_start", internal.ErrCodeInvalidDateRange)
		}
		end = &parsed
	}

	if dto.Budget != nil && *dto.Budget < 0 {
		return time.Time{}, nil, internal.NewValidationError("budget must not be negative", internal.ErrCodeInvalidAmount)
	}

	return start, end, nil
}
