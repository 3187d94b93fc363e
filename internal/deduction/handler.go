package deduction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rdelacruz/payroll-management/internal/transport"
	"github.com/rdelacruz/payroll-management/pkg/logger"
)

type ServiceAPI interface {
	CreateDeduction(dto CreateDeductionDTO) (*Deduction, error)
	ListByEmployee(employeeID int64) ([]*Deduction, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	var dto CreateDeductionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deduction, err := h.Service.CreateDeduction(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, deduction)
}

// ListDeductions lists the deductions registered for one employee, given by
// the employee_id query parameter.
func (h *Handler) ListDeductions(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employee_id"), 10, 64)
	if err != nil || employeeID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "employee_id query parameter is required")
		return
	}

	deductions, err := h.Service.ListByEmployee(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, deductions)
}
