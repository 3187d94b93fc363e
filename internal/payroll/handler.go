package payroll

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/rdelacruz/payroll-management/internal/payrecord"
	"github.com/rdelacruz/payroll-management/internal/transport"
	"github.com/rdelacruz/payroll-management/pkg/logger"
)

type ServiceAPI interface {
	Calculate(dto CalculatePayrollDTO) (*Computation, error)
	Commit(ctx context.Context, dto CommitPayrollDTO) (*Payroll, *payrecord.PayRecord, error)
	GetPayroll(id int64) (*Payroll, error)
	ListByEmployee(employeeID int64) ([]*Payroll, error)
	DeletePayroll(id int64) error
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

// CalculatePayroll previews a week's pay without persisting anything.
func (h *Handler) CalculatePayroll(w http.ResponseWriter, r *http.Request) {
	var dto CalculatePayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	computation, err := h.Service.Calculate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, computation)
}

type commitResponse struct {
	Payroll   *Payroll             `json:"payroll"`
	PayRecord *payrecord.PayRecord `json:"pay_record"`
}

// CommitPayroll computes and persists a week's payroll with its pay record.
func (h *Handler) CommitPayroll(w http.ResponseWriter, r *http.Request) {
	var dto CommitPayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, record, err := h.Service.Commit(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, commitResponse{Payroll: p, PayRecord: record})
}

func (h *Handler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	p, err := h.Service.GetPayroll(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	payrolls, err := h.Service.ListByEmployee(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, payrolls)
}

func (h *Handler) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	if err := h.Service.DeletePayroll(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
