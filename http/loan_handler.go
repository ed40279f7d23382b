package http

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"loan-prepay/domain"
	"loan-prepay/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.service.CalculateLoan)
}

func (h *LoanHandler) ReduceTenure(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.service.ReduceTenure)
}

func (h *LoanHandler) ReduceEMI(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.service.ReduceEMI)
}

func (h *LoanHandler) ExtraPayment(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.service.ExtraPayment)
}

func (h *LoanHandler) CompareRefinance(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, h.service.CompareRefinance)
}

// History lists recent calculations. limit defaults to 20 and is capped at 200.
func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	if records == nil {
		records = []domain.CalculationRecord{}
	}
	writeJSON(w, h.logger, http.StatusOK, records)
}

// serve runs the POST decode, call, encode cycle shared by every calculation
// endpoint.
func serve[I any, R any](
	w http.ResponseWriter,
	r *http.Request,
	logger *zap.Logger,
	call func(context.Context, I) (R, error),
) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input I
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := call(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, logger, err)
		return
	}
	writeJSON(w, logger, http.StatusOK, result)
}
