package service

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"apartment-journey/domain"
)

const metricsNamespace = "apartment_journey"

//nolint:gochecknoglobals
var (
	solverRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "solver_runs_total",
		Help:      "Affordability solves by mode and convergence.",
	}, []string{"mode", "converged"})

	solverIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "solver_iterations",
		Help:      "Fixed-point iterations used per solve.",
		Buckets:   prometheus.LinearBuckets(1, 2, 8),
	})

	outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "outcomes_total",
		Help:      "Advisory outcomes attached to results.",
	}, []string{"source", "outcome"})

	dealEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "deal_evaluations_total",
		Help:      "Known-deal evaluations.",
	})

	wizardTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "wizard_transitions_total",
		Help:      "Wizard events by kind and result.",
	}, []string{"event", "result"})
)

func observeSolve(result domain.SolverResult) {
	solverRuns.WithLabelValues(string(result.Mode), strconv.FormatBool(result.Converged)).Inc()
	solverIterations.Observe(float64(result.Iterations))
	observeOutcomes("solver", result.Outcomes)
}

func observeOutcomes(source string, outcomes domain.Outcomes) {
	for _, o := range outcomes {
		outcomesTotal.WithLabelValues(source, string(o)).Inc()
	}
}
