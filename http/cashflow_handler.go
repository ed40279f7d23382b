package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"loan-prepay/domain"
	"loan-prepay/service"
)

type CashflowHandler struct {
	service *service.CashflowService
	logger  *zap.Logger
}

func NewCashflowHandler(service *service.CashflowService, logger *zap.Logger) *CashflowHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CashflowHandler{service: service, logger: logger}
}

// Analyze summarizes a list of transactions and returns prepayment advice.
func (h *CashflowHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, func(_ context.Context, in domain.CashflowInput) (domain.CashflowResult, error) {
		return h.service.Analyze(in)
	})
}

// Predict returns the category of one transaction description.
func (h *CashflowHandler) Predict(w http.ResponseWriter, r *http.Request) {
	serve(w, r, h.logger, func(_ context.Context, in domain.CategoryInput) (domain.CategoryResult, error) {
		return h.service.Categorize(in)
	})
}
