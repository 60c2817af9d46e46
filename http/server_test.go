package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"apartment-journey/repository"
	"apartment-journey/service"
)

func newTestRouter() http.Handler {
	policy := service.DefaultPolicy()
	tax := service.NewTaxEngine(policy)
	deals := service.NewDealService(policy, tax)
	affordability := service.NewAffordabilityService(service.NewSolver(policy, tax))
	sessions := repository.NewCacheSessionRepository(repository.NewMemoryCache(time.Hour, time.Hour), time.Hour)

	s := NewServer(
		deals,
		affordability,
		service.NewTermComparisonService(policy),
		service.NewWizardService(sessions, deals, affordability),
	)

	r := chi.NewRouter()
	s.RegisterRoutes(r)

	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &v))

	return v
}

func TestPostV1Tax(t *testing.T) {
	rq := require.New(t)

	w := do(t, newTestRouter(), http.MethodPost, "/v1/tax", `{"price": 1000000}`)
	rq.Equal(http.StatusOK, w.Code)

	resp := decode[TaxResponse](t, w)
	rq.Equal("standard", resp.Table)
	rq.InDelta(80_000, resp.PurchaseTax, 1e-6)
	rq.InDelta(500_000, resp.MaxMortgage, 1e-6)
}

func TestPostV1DealEvaluate(t *testing.T) {
	rq := require.New(t)

	w := do(t, newTestRouter(), http.MethodPost, "/v1/deal/evaluate", `{
		"price": 2000000,
		"mortgage_amount": 1500000,
		"term_years": 30,
		"profile": {"is_citizen": true, "is_first_home": true}
	}`)
	rq.Equal(http.StatusOK, w.Code)

	resp := decode[DealResponse](t, w)
	rq.InDelta(77_443.925, resp.Fees.Total, 1e-6)
	rq.InDelta(577_443.925, resp.CashInvestment, 1e-6)
	rq.InDelta(8_325, resp.MonthlyPayment, 1e-6)
	rq.Empty(resp.Outcomes)
	rq.NotNil(resp.Outcomes)
}

func TestPostV1DealEvaluate_DefaultTerm(t *testing.T) {
	rq := require.New(t)

	w := do(t, newTestRouter(), http.MethodPost, "/v1/deal/evaluate", `{"price": 1000000, "mortgage_amount": 500000}`)
	rq.Equal(http.StatusOK, w.Code)
	rq.Equal(20, decode[DealResponse](t, w).TermYears)
}

func TestPostV1AffordabilitySolve(t *testing.T) {
	rq := require.New(t)

	w := do(t, newTestRouter(), http.MethodPost, "/v1/affordability/solve", `{
		"available_cash": 1000000,
		"monthly_cap": 8000,
		"profile": {"is_citizen": true, "is_first_home": true}
	}`)
	rq.Equal(http.StatusOK, w.Code)

	resp := decode[AffordabilityResponse](t, w)
	rq.Equal("net_cash", resp.Mode)
	rq.Equal(30, resp.TermYears)
	rq.True(resp.Converged)
	rq.InDelta(2_342_586, resp.Price, 50)
	rq.InDelta(8_000, resp.MonthlyPayment, 1e-6)
}

func TestPostV1AffordabilitySolve_Outcomes(t *testing.T) {
	rq := require.New(t)

	w := do(t, newTestRouter(), http.MethodPost, "/v1/affordability/solve", `{
		"available_cash": 1000,
		"monthly_cap": 5000,
		"profile": {"is_citizen": true, "is_first_home": true}
	}`)
	rq.Equal(http.StatusOK, w.Code)

	resp := decode[AffordabilityResponse](t, w)
	rq.False(resp.Converged)
	rq.Equal([]string{"NonConvergence", "InsufficientCash", "NonPositivePrice"}, resp.Outcomes)
}

func TestPostV1TermsCompare(t *testing.T) {
	rq := require.New(t)

	w := do(t, newTestRouter(), http.MethodPost, "/v1/terms/compare", `{"mortgage_amount": 1000000, "monthly_cap": 6000}`)
	rq.Equal(http.StatusOK, w.Code)

	resp := decode[TermsResponse](t, w)
	rq.Equal(30, resp.RecommendedTerm)
	rq.Len(resp.Options, 2)
}

func TestBadRequests(t *testing.T) {
	h := newTestRouter()

	testCases := []struct {
		name string
		path string
		body string
		code string
	}{
		{"malformed json", "/v1/tax", `{"price": `, "ValidationError"},
		{"negative price", "/v1/tax", `{"price": -1}`, "ValidationError"},
		{"unsupported term", "/v1/deal/evaluate", `{"price": 1000000, "term_years": 25}`, "ValidationError"},
		{"unknown mode", "/v1/affordability/solve", `{"mode": "gross", "available_cash": 1}`, "ValidationError"},
		{"huge amount", "/v1/affordability/solve", `{"available_cash": 5000000000}`, "InvalidInput"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, tc.code, decode[map[string]string](t, w)["code"])
		})
	}
}

func TestWizardJourney(t *testing.T) {
	rq := require.New(t)
	h := newTestRouter()

	w := do(t, h, http.MethodPost, "/v1/wizard", "")
	rq.Equal(http.StatusCreated, w.Code)

	state := decode[WizardState](t, w)
	rq.Equal("home", state.Step)

	base := "/v1/wizard/" + state.ID

	w = do(t, h, http.MethodPost, base+"/events", `{"kind": "choose_flow", "flow": "known_deal"}`)
	rq.Equal(http.StatusOK, w.Code)
	rq.Equal("known_basics", decode[WizardState](t, w).Step)

	w = do(t, h, http.MethodGet, base+"/summary", "")
	rq.Equal(http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, base+"/events", `{
		"kind": "submit_deal_basics",
		"deal_basics": {"price": 2000000, "mortgage_amount": 1500000, "profile": {"is_citizen": true, "is_first_home": true}}
	}`)
	rq.Equal(http.StatusOK, w.Code)
	state = decode[WizardState](t, w)
	rq.Equal("known_expenses", state.Step)
	rq.NotNil(state.DealResult)

	w = do(t, h, http.MethodPost, base+"/events", `{"kind": "submit_expenses", "expenses": {}}`)
	rq.Equal(http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, base+"/events", `{"kind": "submit_mortgage", "mortgage": {"term_years": 30}}`)
	rq.Equal(http.StatusOK, w.Code)
	rq.Equal("known_summary", decode[WizardState](t, w).Step)

	w = do(t, h, http.MethodGet, base, "")
	rq.Equal(http.StatusOK, w.Code)
	state = decode[WizardState](t, w)
	rq.NotNil(state.Deal)
	rq.Equal(30, state.Deal.TermYears)

	w = do(t, h, http.MethodGet, base+"/summary", "")
	rq.Equal(http.StatusOK, w.Code)
	summary := decode[SummaryResponse](t, w)
	rq.Equal("Apartment Deal Summary", summary.Title)
	rq.Equal("2,000,000 NIS", summary.Rows[0].Formatted)

	w = do(t, h, http.MethodGet, base+"/summary.csv", "")
	rq.Equal(http.StatusOK, w.Code)
	rq.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	rq.True(strings.HasPrefix(w.Body.String(), "Item,Amount (NIS)\nApartment Price,2000000.00\n"))
}

func TestWizardErrors(t *testing.T) {
	rq := require.New(t)
	h := newTestRouter()

	w := do(t, h, http.MethodGet, "/v1/wizard/unknown", "")
	rq.Equal(http.StatusNotFound, w.Code)
	rq.Equal("SessionNotFound", decode[map[string]string](t, w)["code"])

	w = do(t, h, http.MethodPost, "/v1/wizard", "")
	id := decode[WizardState](t, w).ID

	w = do(t, h, http.MethodPost, "/v1/wizard/"+id+"/events", `{"kind": "submit_mortgage", "mortgage": {"term_years": 20}}`)
	rq.Equal(http.StatusConflict, w.Code)
	rq.Equal("InvalidTransition", decode[map[string]string](t, w)["code"])

	w = do(t, h, http.MethodPost, "/v1/wizard/"+id+"/events", `{}`)
	rq.Equal(http.StatusBadRequest, w.Code)
}
