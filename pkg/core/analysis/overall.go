package analysis

import "bizlens/pkg/core/metrics"

// Weights for the overall score. Risk enters inverted (100 - risk) so every
// component reads "higher is better". They sum to 1.0.
const (
	weightEfficiency = 0.30
	weightMarket     = 0.25
	weightHealth     = 0.20
	weightGrowth     = 0.15
	weightRisk       = 0.10
)

// combineOverall folds the sub-scores into the final 0-100 score and letter
// grade.
func combineOverall(perf PerformanceMetrics, market MarketPosition, health FinancialHealth, growth GrowthAnalysis, risk RiskAssessment) OverallScore {
	eff := perf.EfficiencyScore * weightEfficiency
	mkt := market.Percentile * weightMarket
	fin := health.Score * weightHealth
	grw := growth.Score * weightGrowth
	rsk := (100 - risk.OverallRisk) * weightRisk

	score := metrics.Clamp(eff+mkt+fin+grw+rsk, 0, 100)

	return OverallScore{
		Score:               score,
		Grade:               letterGrade(score),
		EfficiencyComponent: eff,
		MarketComponent:     mkt,
		HealthComponent:     fin,
		GrowthComponent:     grw,
		RiskComponent:       rsk,
	}
}

func letterGrade(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
