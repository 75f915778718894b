package analysis

import (
	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// analyzeEconomicImpact scores how the macro climate bears on the sector.
// Each sub-score is centered at 50 and shifted by the sector's signed
// sensitivity coefficient times the indicator's deviation from its neutral
// reference. A missing economic snapshot scores everything neutral.
func (e *Engine) analyzeEconomicImpact(biz *models.BusinessSnapshot, econ *models.EconomicSnapshot) EconomicImpact {
	if econ == nil {
		return EconomicImpact{
			InterestRateScore: 50,
			InflationScore:    50,
			EmploymentScore:   50,
			ConfidenceScore:   50,
			GDPScore:          50,
			Score:             50,
			Label:             EconNeutral,
			DataAvailable:     false,
		}
	}

	sens := e.bench.Sensitivity(biz.Sector)
	neutral := e.bench.Neutral()

	shifted := func(coef, value, reference float64) float64 {
		return metrics.Clamp(50+coef*(value-reference), 0, 100)
	}

	rate := shifted(sens.PolicyRate, econ.PolicyRate, neutral.PolicyRate)
	inflation := shifted(sens.Inflation, econ.InflationRate, neutral.Inflation)
	employment := shifted(sens.Employment, econ.UnemploymentRate, neutral.Unemployment)
	confidence := shifted(sens.Confidence, econ.ConsumerConfidence, neutral.ConsumerConfidence)
	gdp := shifted(sens.GDP, econ.GDPGrowth, neutral.GDPGrowth)

	score := (rate + inflation + employment + confidence + gdp) / 5

	return EconomicImpact{
		InterestRateScore: rate,
		InflationScore:    inflation,
		EmploymentScore:   employment,
		ConfidenceScore:   confidence,
		GDPScore:          gdp,
		Score:             score,
		Label:             climateLabel(score),
		DataAvailable:     true,
	}
}

func climateLabel(score float64) string {
	switch {
	case score >= 65:
		return EconStrongTailwind
	case score >= 55:
		return EconTailwind
	case score >= 45:
		return EconNeutral
	case score >= 35:
		return EconHeadwind
	default:
		return EconStrongHeadwind
	}
}
