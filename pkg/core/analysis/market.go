package analysis

import "bizlens/pkg/models"

// analyzeMarket looks up the sector benchmark and location multiplier and
// positions current revenue against them.
func (e *Engine) analyzeMarket(biz *models.BusinessSnapshot) MarketPosition {
	bench := e.bench.Sector(biz.Sector)
	mult := e.bench.Multiplier(biz.Sector, biz.Location)
	benchRevenue := bench.AvgMonthlyRevenue * mult

	ratio := safeDiv(biz.CurrentRevenue(), benchRevenue)

	return MarketPosition{
		BenchmarkRevenue:   benchRevenue,
		LocationMultiplier: mult,
		PerformanceRatio:   ratio,
		Percentile:         ratioPercentile(ratio),
		Category:           positionCategory(ratio),
		Competition:        e.bench.Competition(biz.Location),
	}
}

// ratioPercentile maps the performance ratio to an estimated market
// percentile through fixed breakpoints. The mapping saturates at 95; ratios
// beyond 1.5 are not extrapolated.
func ratioPercentile(ratio float64) float64 {
	switch {
	case ratio >= 1.5:
		return 95
	case ratio >= 1.2:
		return 80
	case ratio >= 1.0:
		return 65
	case ratio >= 0.8:
		return 50
	case ratio >= 0.6:
		return 30
	default:
		return 15
	}
}

func positionCategory(ratio float64) string {
	switch {
	case ratio >= 1.5:
		return PositionTopPerformer
	case ratio >= 1.2:
		return PositionAboveAverage
	case ratio >= 0.8:
		return PositionAverage
	case ratio >= 0.6:
		return PositionBelowAverage
	default:
		return PositionUnderperforming
	}
}
