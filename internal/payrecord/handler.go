package payrecord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/rdelacruz/payroll-management/internal/transport"
	"github.com/rdelacruz/payroll-management/pkg/logger"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreatePayRecordDTO) (*PayRecord, error)
	GetPayRecord(id int64) (*PayRecord, error)
	ListByEmployee(employeeID int64) ([]*PayRecord, error)
	ListByPayroll(payrollID int64) ([]*PayRecord, error)
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

func (h *Handler) CreatePayRecord(w http.ResponseWriter, r *http.Request) {
	var dto CreatePayRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) GetPayRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid pay record ID")
		return
	}

	record, err := h.Service.GetPayRecord(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	records, err := h.Service.ListByEmployee(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) ListByPayroll(w http.ResponseWriter, r *http.Request) {
	payrollID, err := strconv.ParseInt(chi.URLParam(r, "payrollID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	records, err := h.Service.ListByPayroll(payrollID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}
