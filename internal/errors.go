package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeNoData       ErrorType = "NO_DATA"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidShift     ErrorCode = "INVALID_SHIFT"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"

	ErrCodeEmployeeNotFound   ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeProjectNotFound    ErrorCode = "PROJECT_NOT_FOUND"
	ErrCodeAttendanceNotFound ErrorCode = "ATTENDANCE_NOT_FOUND"
	ErrCodePayrollNotFound    ErrorCode = "PAYROLL_NOT_FOUND"
	ErrCodeDeductionNotFound  ErrorCode = "DEDUCTION_NOT_FOUND"
	ErrCodePayRecordNotFound  ErrorCode = "PAY_RECORD_NOT_FOUND"
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"

	ErrCodeDuplicateAttendance ErrorCode = "DUPLICATE_ATTENDANCE"
	ErrCodeDuplicatePayroll    ErrorCode = "DUPLICATE_PAYROLL"
	ErrCodeDuplicateReference  ErrorCode = "DUPLICATE_REFERENCE"
	ErrCodeDuplicateUsername   ErrorCode = "DUPLICATE_USERNAME"
	ErrCodeEmployeeReferenced  ErrorCode = "EMPLOYEE_REFERENCED"
	ErrCodeProjectReferenced   ErrorCode = "PROJECT_REFERENCED"

	ErrCodeNoAttendanceData ErrorCode = "NO_ATTENDANCE_DATA"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"

	ErrCodePersistence     ErrorCode = "PERSISTENCE_ERROR"
	ErrCodePayRecordFailed ErrorCode = "PAY_RECORD_FAILED"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NewNoDataError reports an informational "nothing to compute" outcome. It
// rides the error channel so callers can distinguish it from a zero-value
// result, but it is not a failure in the usual sense.
func NewNoDataError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNoData,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// NewPersistenceError wraps a storage failure. The message stays generic so
// driver and schema details never reach the caller; the cause is kept for
// logs only.
func NewPersistenceError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodePersistence,
		Message:    "storage operation failed",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidShift = NewValidationError("time out must be after time in for same-day shifts", ErrCodeInvalidShift)

	ErrEmployeeNotFound   = NewNotFoundError("employee not found", ErrCodeEmployeeNotFound)
	ErrProjectNotFound    = NewNotFoundError("project not found", ErrCodeProjectNotFound)
	ErrAttendanceNotFound = NewNotFoundError("attendance entry not found", ErrCodeAttendanceNotFound)
	ErrPayrollNotFound    = NewNotFoundError("payroll not found", ErrCodePayrollNotFound)
	ErrDeductionNotFound  = NewNotFoundError("deduction not found", ErrCodeDeductionNotFound)
	ErrPayRecordNotFound  = NewNotFoundError("pay record not found", ErrCodePayRecordNotFound)
	ErrUserNotFound       = NewNotFoundError("user not found", ErrCodeUserNotFound)

	ErrDuplicateAttendance = NewConflictError("attendance already recorded for this employee, project and date", ErrCodeDuplicateAttendance)
	ErrDuplicatePayroll    = NewConflictError("payroll already committed for this employee and week", ErrCodeDuplicatePayroll)
	ErrDuplicateReference  = NewConflictError("reference number already used", ErrCodeDuplicateReference)
	ErrDuplicateUsername   = NewConflictError("username already taken", ErrCodeDuplicateUsername)
	ErrEmployeeReferenced  = NewConflictError("employee has attendance or payroll records", ErrCodeEmployeeReferenced)
	ErrProjectReferenced   = NewConflictError("project has attendance records", ErrCodeProjectReferenced)

	ErrNoAttendanceData = NewNoDataError("no attendance recorded for the requested period", ErrCodeNoAttendanceData)

	ErrInvalidCredentials = NewUnauthorizedError("invalid username or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("token has expired", ErrCodeTokenExpired)
	ErrForbidden          = NewForbiddenError("insufficient role for this operation", ErrCodeForbidden)

	// ErrPayRecordFailed reports the commit case the caller must be able to
	// reconcile: the payroll row went in but the pay record write failed.
	// The transaction rolls the payroll back, so nothing is persisted, but
	// the distinct code tells the caller which half broke.
	ErrPayRecordFailed = &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodePayRecordFailed,
		Message:    "pay record could not be written; payroll was rolled back",
		StatusCode: http.StatusInternalServerError,
	}
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
