package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/xid"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
	"apartment-journey/pkg/logx"
	"apartment-journey/repository"
)

// WizardService drives wizard sessions: it loads the state, applies the pure
// transition, recomputes results for the new step and saves.
type WizardService struct {
	sessions      repository.SessionRepository
	deals         *DealService
	affordability *AffordabilityService
}

func NewWizardService(
	sessions repository.SessionRepository,
	deals *DealService,
	affordability *AffordabilityService,
) *WizardService {
	return &WizardService{
		sessions:      sessions,
		deals:         deals,
		affordability: affordability,
	}
}

func (s *WizardService) Start(ctx context.Context) (domain.WizardState, error) {
	state := domain.NewWizardState(xid.New().String())

	if err := s.sessions.Save(ctx, state); err != nil {
		return domain.WizardState{}, fmt.Errorf("sessions.Save: %w", err)
	}

	logger(ctx).Info("wizard started", slog.String(logx.FieldSessionID, state.ID))

	return state, nil
}

func (s *WizardService) Get(ctx context.Context, id string) (domain.WizardState, error) {
	state, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.WizardState{}, fmt.Errorf("sessions.Get: %w", err)
	}
	return state, nil
}

func (s *WizardService) Apply(
	ctx context.Context,
	id string,
	event domain.WizardEvent,
) (domain.WizardState, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return domain.WizardState{}, err
	}

	log := logger(ctx).With(
		slog.String(logx.FieldSessionID, id),
		slog.String(logx.FieldWizardEvent, string(event.Kind)),
	)

	next, err := Transition(state, event)
	if err != nil {
		wizardTransitions.WithLabelValues(string(event.Kind), "rejected").Inc()
		log.Info("wizard event rejected", logx.Error(err))
		return domain.WizardState{}, err
	}

	next, err = s.refresh(ctx, next)
	if err != nil {
		wizardTransitions.WithLabelValues(string(event.Kind), "rejected").Inc()
		return domain.WizardState{}, err
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return domain.WizardState{}, fmt.Errorf("sessions.Save: %w", err)
	}

	wizardTransitions.WithLabelValues(string(event.Kind), "applied").Inc()
	log.Debug("wizard advanced", slog.String(logx.FieldWizardStep, string(next.Step)))

	return next, nil
}

// refresh computes the results shown at the state's step.
func (s *WizardService) refresh(ctx context.Context, state domain.WizardState) (domain.WizardState, error) {
	switch state.Step {
	case domain.StepKnownExpenses, domain.StepKnownMortgage, domain.StepKnownSummary:
		result, err := s.deals.Evaluate(ctx, state.Deal)
		if err != nil {
			return state, err
		}
		state.DealResult = &result
	case domain.StepBudgetDetails:
		result, err := s.affordability.Solve(ctx, state.Budget)
		if err != nil {
			return state, err
		}
		state.BudgetResult = &result
	default:
		state.DealResult = nil
		state.BudgetResult = nil
	}

	return state, nil
}

// Summary renders the report for a session at a summary step.
func (s *WizardService) Summary(ctx context.Context, id string) (Summary, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return Summary{}, err
	}

	switch {
	case state.Step == domain.StepKnownSummary && state.DealResult != nil:
		return DealSummary(*state.DealResult), nil
	case state.Step == domain.StepBudgetDetails && state.BudgetResult != nil:
		return BudgetSummary(*state.BudgetResult), nil
	default:
		return Summary{}, domain.NewError(errcodes.SummaryNotReady,
			fmt.Sprintf("no summary at step %q", state.Step))
	}
}
