package analysis

import (
	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// analyzeFinancialHealth scores liquidity and profitability from a baseline
// of 50, adjusted by the macro climate when economic data is supplied.
func (e *Engine) analyzeFinancialHealth(biz *models.BusinessSnapshot, econ *models.EconomicSnapshot) FinancialHealth {
	revenue := biz.CurrentRevenue()
	burn := biz.CurrentExpenses()
	runway := cappedRunway(biz.CurrentCash, burn)
	margin := metrics.ProfitMargin(revenue, burn)

	score := 50.0

	// Cash runway bands, months.
	switch {
	case runway >= 12:
		score += 20
	case runway >= 6:
		score += 10
	case runway >= 3:
		// neutral band
	case runway >= 2:
		score -= 10
	default:
		score -= 25
	}

	// Profitability bands.
	net := revenue - burn
	switch {
	case net > 0 && margin > 0.15:
		score += 15
	case net > 0 && margin > 0.08:
		score += 10
	case net > 0:
		score += 5
	case net < 0:
		score -= 20
	}

	// Macro adjustments apply only when the caller supplied economic data;
	// absence is neutral, not a penalty.
	if econ != nil {
		switch {
		case econ.PolicyRate >= 8:
			score -= 10
		case econ.PolicyRate >= 6.5:
			score -= 5
		}
		switch {
		case econ.InflationRate >= 8:
			score -= 10
		case econ.InflationRate >= 5:
			score -= 5
		}
	}

	score = metrics.Clamp(score, 0, 100)

	return FinancialHealth{
		Score:        score,
		Status:       healthStatus(score),
		MonthlyBurn:  burn,
		RunwayMonths: runway,
		NetMargin:    margin,
	}
}

func healthStatus(score float64) string {
	switch {
	case score >= 80:
		return HealthExcellent
	case score >= 65:
		return HealthGood
	case score >= 50:
		return HealthFair
	case score >= 30:
		return HealthPoor
	default:
		return HealthCritical
	}
}
