package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"apartment-journey/pkg/httpx/reply"
	"apartment-journey/service"
)

// Server groups the API handlers over the calculators and the wizard.
type Server struct {
	deals         *service.DealService
	affordability *service.AffordabilityService
	terms         *service.TermComparisonService
	wizard        *service.WizardService
}

func NewServer(
	deals *service.DealService,
	affordability *service.AffordabilityService,
	terms *service.TermComparisonService,
	wizard *service.WizardService,
) Server {
	return Server{
		deals:         deals,
		affordability: affordability,
		terms:         terms,
		wizard:        wizard,
	}
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/tax", handler(s.postV1Tax))
		r.Post("/deal/evaluate", handler(s.postV1DealEvaluate))
		r.Post("/affordability/solve", handler(s.postV1AffordabilitySolve))
		r.Post("/terms/compare", handler(s.postV1TermsCompare))

		r.Route("/wizard", func(r chi.Router) {
			r.Post("/", handler(s.postV1Wizard))
			r.Get("/{id}", handler(s.getV1Wizard))
			r.Post("/{id}/events", handler(s.postV1WizardEvent))
			r.Get("/{id}/summary", handler(s.getV1WizardSummary))
			r.Get("/{id}/summary.csv", handler(s.getV1WizardSummaryCSV))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
