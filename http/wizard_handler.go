package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"apartment-journey/pkg/httpx/reply"
	"apartment-journey/pkg/httpx/req"
	"apartment-journey/pkg/logx"
	"apartment-journey/service"
)

func (s Server) postV1Wizard(w http.ResponseWriter, r *http.Request) error {
	state, err := s.wizard.Start(r.Context())
	if err != nil {
		return fmt.Errorf("wizard.Start: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusCreated, newRESTWizardState(state))

	return nil
}

func (s Server) getV1Wizard(w http.ResponseWriter, r *http.Request) error {
	state, err := s.wizard.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("wizard.Get: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTWizardState(state))

	return nil
}

func (s Server) postV1WizardEvent(w http.ResponseWriter, r *http.Request) error {
	var body WizardEventRequest
	if err := req.Read(r, &body); err != nil {
		return err
	}

	state, err := s.wizard.Apply(r.Context(), chi.URLParam(r, "id"), newDomainWizardEvent(body))
	if err != nil {
		return fmt.Errorf("wizard.Apply: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTWizardState(state))

	return nil
}

func (s Server) getV1WizardSummary(w http.ResponseWriter, r *http.Request) error {
	summary, err := s.wizard.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("wizard.Summary: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTSummary(summary))

	return nil
}

func (s Server) getV1WizardSummaryCSV(w http.ResponseWriter, r *http.Request) error {
	summary, err := s.wizard.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("wizard.Summary: %w", err)
	}

	// Rendered into a buffer so a failure can still become a JSON error.
	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, summary.Rows); err != nil {
		return fmt.Errorf("service.WriteCSV: %w", err)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="apartment-summary.csv"`)
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		logger(r.Context()).Error("buf.WriteTo", logx.Error(err))
	}

	return nil
}
