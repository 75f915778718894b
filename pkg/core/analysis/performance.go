package analysis

import (
	"math"

	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// maxRunwayMonths caps the reported runway so a zero-burn business does not
// put +Inf into a JSON field. The raw metric is still unbounded.
const maxRunwayMonths = 120

// analyzePerformance computes the raw operating metrics and the efficiency
// score.
func (e *Engine) analyzePerformance(biz *models.BusinessSnapshot) PerformanceMetrics {
	revenue := biz.CurrentRevenue()
	expenses := biz.CurrentExpenses()

	growth := metrics.GrowthRate(biz.MonthlyRevenue)
	annualized := math.Pow(1+growth, 12) - 1
	margin := metrics.ProfitMargin(revenue, expenses)
	revPerEmp := revenuePerEmployee(revenue, biz.EmployeeCount)
	runway := cappedRunway(biz.CurrentCash, expenses)

	seasonal := e.bench.SeasonalFactor(biz.Sector, biz.AsOfMonth)
	adjusted := revenue
	if seasonal > 0 {
		adjusted = revenue / seasonal
	}

	return PerformanceMetrics{
		CurrentRevenue:     revenue,
		GrowthRate:         growth,
		AnnualizedGrowth:   annualized,
		Volatility:         metrics.Volatility(biz.MonthlyRevenue),
		Trend:              metrics.TrendDirection(biz.MonthlyRevenue),
		ProfitMargin:       margin,
		RevenuePerEmployee: revPerEmp,
		RunwayMonths:       runway,
		SeasonalFactor:     seasonal,
		AdjustedRevenue:    adjusted,
		EfficiencyScore:    efficiencyScore(revenue, expenses, margin, revPerEmp, runway),
	}
}

func cappedRunway(cash, burn float64) float64 {
	r := metrics.CashRunway(cash, burn)
	if math.IsInf(r, 1) || r > maxRunwayMonths {
		return maxRunwayMonths
	}
	return r
}

// efficiencyScore starts at a baseline of 50 and applies three ordered
// delta tables: profit margin tiers, revenue per employee tiers, and cash
// runway tiers. The ordering and thresholds are deliberate and encode
// tie-break policy; do not reorder.
func efficiencyScore(revenue, expenses, margin, revPerEmp, runway float64) float64 {
	score := 50.0

	// Margin tiers. The loss penalty checks the raw net, because the
	// reported margin is floored at 0.
	switch {
	case margin > 0.20:
		score += 25
	case margin > 0.15:
		score += 15
	case margin > 0.10:
		score += 10
	case revenue > 0 && expenses > revenue:
		score -= 20
	}

	// Monthly revenue per employee, USD.
	switch {
	case revPerEmp > 15000:
		score += 15
	case revPerEmp > 10000:
		score += 10
	case revPerEmp > 7500:
		score += 5
	case revPerEmp < 5000:
		score -= 10
	}

	// Cash runway, months.
	switch {
	case runway >= 6:
		score += 10
	case runway >= 4:
		score += 5
	case runway < 2:
		score -= 15
	}

	return metrics.Clamp(score, 0, 100)
}
