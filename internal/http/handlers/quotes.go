package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coverledger/go-rating/internal/core"
	"github.com/coverledger/go-rating/pkg/problem"
)

type QuoteHandler struct {
	Svc core.QuoteService
	Log *slog.Logger
}

func NewQuoteHandler(svc core.QuoteService, log *slog.Logger) *QuoteHandler {
	return &QuoteHandler{Svc: svc, Log: log}
}

func (h *QuoteHandler) Mount(r chi.Router) {
	r.Post("/quotes/premium", h.CalculatePremium)
	r.Get("/products/{product_id}/quotes", h.GetPremiumQuotes)
}

// CalculatePremium rates one plan at one payment frequency.
// 200: JSON breakdown; 400: bad body; 404: plan not found; 500: internal error.
func (h *QuoteHandler) CalculatePremium(w http.ResponseWriter, r *http.Request) {
	var req core.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Body", "Request body must be valid JSON.")
		return
	}

	bd, err := h.Svc.CalculatePremium(r.Context(), req)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}

	if err := json.NewEncoder(w).Encode(bd); err != nil {
		h.Log.Error("failed to encode breakdown", "plan_code", req.PlanCode, "err", err)
	}
}

// GetPremiumQuotes returns payment options for a product. Applicant
// attributes and frequency arrive as query parameters; missing or
// malformed risk attributes degrade to defaults rather than erroring.
// 200: JSON comparison; 400: bad term; 404: no product/plan; 409: product inactive.
func (h *QuoteHandler) GetPremiumQuotes(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Product ID", "Path parameter product_id is required.")
		return
	}

	q := r.URL.Query()
	req := core.ComparisonRequest{
		ProductID:        productID,
		TermYears:        intQuery(q.Get("term_years")),
		CoverageAmount:   int64Query(q.Get("coverage_amount")),
		PaymentFrequency: q.Get("frequency"),
		Age:              intQuery(q.Get("age")),
		Gender:           q.Get("gender"),
		HealthStatus:     q.Get("health_status"),
		OccupationRisk:   q.Get("occupation_risk"),
	}

	cmp, err := h.Svc.GetPremiumQuotes(r.Context(), req)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}

	if err := json.NewEncoder(w).Encode(cmp); err != nil {
		h.Log.Error("failed to encode comparison", "product_id", productID, "err", err)
	}
}

func intQuery(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func int64Query(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
