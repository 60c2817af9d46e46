package service

import (
	"context"
	"log/slog"

	"apartment-journey/domain"
	"apartment-journey/pkg/logx"
)

type AffordabilityService struct {
	solver *Solver
}

func NewAffordabilityService(solver *Solver) *AffordabilityService {
	return &AffordabilityService{solver: solver}
}

// Solve runs the solver. Non-convergence and the other outcomes are reported
// on the result; only invalid input returns an error.
func (s *AffordabilityService) Solve(
	ctx context.Context,
	input domain.AffordabilityInput,
) (domain.SolverResult, error) {
	result, err := s.solver.Solve(input)
	if err != nil {
		return domain.SolverResult{}, err
	}

	observeSolve(result)

	log := logger(ctx).With(
		slog.String(logx.FieldSolveMode, string(result.Mode)),
		slog.Int(logx.FieldIterations, result.Iterations),
		slog.Bool(logx.FieldConverged, result.Converged),
	)

	if !result.Converged {
		log.Warn("affordability solve did not converge",
			slog.Float64(logx.FieldPrice, result.Price),
			slog.Any(logx.FieldOutcomes, result.Outcomes.Strings()),
		)
	} else {
		log.Debug("affordability solved",
			slog.Float64(logx.FieldPrice, result.Price),
			slog.Float64(logx.FieldMortgage, result.MortgageAmount),
		)
	}

	return result, nil
}
