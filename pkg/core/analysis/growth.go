package analysis

import (
	"math"

	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// analyzeGrowth scores growth prospects from revenue trajectory,
// scalability, the sector's own growth rate, and the economic tailwind,
// then scales the total by the business's maturity stage.
func (e *Engine) analyzeGrowth(biz *models.BusinessSnapshot, econ *models.EconomicSnapshot) GrowthAnalysis {
	bench := e.bench.Sector(biz.Sector)

	monthly := metrics.GrowthRate(biz.MonthlyRevenue)
	annualized := math.Pow(1+monthly, 12) - 1

	score := 50.0

	// Revenue growth tiers, annualized.
	switch {
	case annualized > 0.15:
		score += 25
	case annualized > 0.08:
		score += 15
	case annualized > 0.03:
		score += 8
	case annualized < -0.05:
		score -= 20
	}

	// Scalability: monthly revenue per employee against a fixed reference.
	revPerEmp := revenuePerEmployee(biz.CurrentRevenue(), biz.EmployeeCount)
	switch {
	case revPerEmp > 12500:
		score += 10
	case revPerEmp > 7500:
		score += 5
	case revPerEmp < 4000:
		score -= 8
	}

	// A growing sector lifts everyone in it.
	switch {
	case bench.AnnualGrowthRate > 0.10:
		score += 10
	case bench.AnnualGrowthRate > 0.05:
		score += 5
	}

	tailwind := e.economicTailwind(biz.Sector, econ)
	score += tailwind

	stage, mult := maturityStage(biz.YearsInBusiness)
	score = metrics.Clamp(score*mult, 0, 100)

	return GrowthAnalysis{
		Score:              score,
		Potential:          growthPotential(score),
		MaturityStage:      stage,
		MaturityMultiplier: mult,
		RevenueGrowth:      annualized,
		EconomicTailwind:   tailwind,
	}
}

// economicTailwind is the signed macro adjustment fed into growth scoring,
// clamped to ±20. Nil economic data contributes nothing.
func (e *Engine) economicTailwind(sector models.Sector, econ *models.EconomicSnapshot) float64 {
	if econ == nil {
		return 0
	}
	sens := e.bench.Sensitivity(sector)
	neutral := e.bench.Neutral()

	shift := sens.GDP*(econ.GDPGrowth-neutral.GDPGrowth) +
		sens.Confidence*(econ.ConsumerConfidence-neutral.ConsumerConfidence)
	return metrics.Clamp(shift, -20, 20)
}

// maturityStage buckets years in business and returns the growth-score
// multiplier for the stage.
func maturityStage(years float64) (string, float64) {
	switch {
	case years < 2:
		return MaturityStartup, 1.5
	case years < 5:
		return MaturityGrowth, 1.2
	case years < 10:
		return MaturityMature, 1.0
	default:
		return MaturityEstablished, 0.8
	}
}

func growthPotential(score float64) string {
	switch {
	case score >= 75:
		return GrowthHigh
	case score >= 60:
		return GrowthPromising
	case score >= 45:
		return GrowthModerate
	case score >= 30:
		return GrowthLimited
	default:
		return GrowthMinimal
	}
}
