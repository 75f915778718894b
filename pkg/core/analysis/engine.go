package analysis

import (
	"fmt"

	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/models"
)

// Engine runs the full performance analysis over one business snapshot.
// It holds only the read-only benchmark store, so a single Engine is safe
// for concurrent use and calls never interact.
type Engine struct {
	bench *benchmark.Store
}

// NewEngine creates an engine backed by the given benchmark store.
func NewEngine(bench *benchmark.Store) *Engine {
	return &Engine{bench: bench}
}

// Analyze runs every sub-analysis and folds them into one Result. The
// economic snapshot is optional; when nil the economic stages fall back to
// neutral baselines. Degenerate numeric input (zero revenue, zero
// denominators) never fails a stage; an error is returned only when the
// snapshot itself is missing required fields.
func (e *Engine) Analyze(biz *models.BusinessSnapshot, econ *models.EconomicSnapshot) (*Result, error) {
	if biz == nil {
		return nil, fmt.Errorf("business snapshot is nil")
	}
	if len(biz.MonthlyRevenue) == 0 {
		return nil, fmt.Errorf("business snapshot has no revenue series")
	}

	perf := e.analyzePerformance(biz)
	market := e.analyzeMarket(biz)
	health := e.analyzeFinancialHealth(biz, econ)
	growth := e.analyzeGrowth(biz, econ)
	risk := e.assessRisk(biz, econ)
	impact := e.analyzeEconomicImpact(biz, econ)
	comp := e.analyzeCompetitive(biz)
	overall := combineOverall(perf, market, health, growth, risk)

	return &Result{
		BenchmarkVersion: e.bench.Version(),
		Performance:      perf,
		Market:           market,
		Financial:        health,
		Growth:           growth,
		Risk:             risk,
		Economic:         impact,
		Competitive:      comp,
		Overall:          overall,
	}, nil
}

// safeDiv guards every ratio in the stages: a zero denominator yields 0.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// revenuePerEmployee is monthly revenue per head, 0 when headcount is
// unknown or zero.
func revenuePerEmployee(revenue float64, employees int) float64 {
	if employees <= 0 {
		return 0
	}
	return revenue / float64(employees)
}
