package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverledger/go-rating/internal/core"
)

type stubQuoteService struct {
	breakdown  core.PremiumBreakdown
	comparison core.QuoteComparison
	err        error

	lastQuoteReq      core.QuoteRequest
	lastComparisonReq core.ComparisonRequest
}

func (s *stubQuoteService) CalculatePremium(_ context.Context, req core.QuoteRequest) (core.PremiumBreakdown, error) {
	s.lastQuoteReq = req
	return s.breakdown, s.err
}

func (s *stubQuoteService) GetPremiumQuotes(_ context.Context, req core.ComparisonRequest) (core.QuoteComparison, error) {
	s.lastComparisonReq = req
	return s.comparison, s.err
}

func newQuoteServer(svc core.QuoteService) *chi.Mux {
	r := chi.NewRouter()
	NewQuoteHandler(svc, slog.Default()).Mount(r)
	return r
}

func TestCalculatePremiumReturnsBreakdown(t *testing.T) {
	svc := &stubQuoteService{
		breakdown: core.PremiumBreakdown{
			PlanCode:  "term-life-10",
			Frequency: core.FrequencyMonthly,
			Premium:   decimal.RequireFromString("110"),
		},
	}
	srv := newQuoteServer(svc)

	body := `{"plan_code":"term-life-10","payment_frequency":"monthly","age":30,"gender":"female","health_status":"good","occupation_risk":"low"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes/premium", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"plan_code":"term-life-10"`)
	assert.Equal(t, "term-life-10", svc.lastQuoteReq.PlanCode)
	assert.Equal(t, 30, svc.lastQuoteReq.Age)
}

func TestCalculatePremiumRejectsBadJSON(t *testing.T) {
	srv := newQuoteServer(&stubQuoteService{})

	req := httptest.NewRequest(http.MethodPost, "/quotes/premium", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestCalculatePremiumMapsNotFound(t *testing.T) {
	svc := &stubQuoteService{err: fmt.Errorf("%w: no plan", core.ErrNotFound)}
	srv := newQuoteServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/quotes/premium", strings.NewReader(`{"plan_code":"missing"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":404`)
}

func TestGetPremiumQuotesParsesQuery(t *testing.T) {
	svc := &stubQuoteService{
		comparison: core.QuoteComparison{ProductID: "prod-1", PlanCode: "term-life-10"},
	}
	srv := newQuoteServer(svc)

	target := "/products/prod-1/quotes?term_years=10&coverage_amount=250000&frequency=monthly&age=42&gender=male&health_status=fair&occupation_risk=high"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	got := svc.lastComparisonReq
	assert.Equal(t, "prod-1", got.ProductID)
	assert.Equal(t, 10, got.TermYears)
	assert.Equal(t, int64(250000), got.CoverageAmount)
	assert.Equal(t, "monthly", got.PaymentFrequency)
	assert.Equal(t, 42, got.Age)
	assert.Equal(t, "male", got.Gender)
	assert.Equal(t, "fair", got.HealthStatus)
	assert.Equal(t, "high", got.OccupationRisk)
}

func TestGetPremiumQuotesIgnoresMalformedNumbers(t *testing.T) {
	svc := &stubQuoteService{}
	srv := newQuoteServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/products/prod-1/quotes?age=abc&term_years=ten", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.lastComparisonReq.Age)
	assert.Equal(t, 0, svc.lastComparisonReq.TermYears)
}
