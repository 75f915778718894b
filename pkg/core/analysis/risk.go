package analysis

import (
	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// Component weights for the overall risk score. They sum to 1.0.
const (
	weightVolatilityRisk  = 0.20
	weightFinancialRisk   = 0.30
	weightMarketRisk      = 0.20
	weightEconomicRisk    = 0.15
	weightOperationalRisk = 0.15
)

// assessRisk combines five independent risk components, each clamped to
// [0,100], through a fixed weight vector.
func (e *Engine) assessRisk(biz *models.BusinessSnapshot, econ *models.EconomicSnapshot) RiskAssessment {
	vol := volatilityRisk(biz.MonthlyRevenue)
	fin := financialRisk(biz)
	market := metrics.Clamp(e.bench.Sector(biz.Sector).MarketRisk, 0, 100)
	economic := e.economicRisk(econ)
	oper := operationalRisk(biz)

	overall := metrics.Clamp(
		vol*weightVolatilityRisk+
			fin*weightFinancialRisk+
			market*weightMarketRisk+
			economic*weightEconomicRisk+
			oper*weightOperationalRisk,
		0, 100)

	return RiskAssessment{
		VolatilityRisk:  vol,
		FinancialRisk:   fin,
		MarketRisk:      market,
		EconomicRisk:    economic,
		OperationalRisk: oper,
		OverallRisk:     overall,
		Level:           riskLevel(overall),
	}
}

// volatilityRisk scales the revenue coefficient of variation onto 0-100.
// A CV of 0.4 or more saturates the component.
func volatilityRisk(series []float64) float64 {
	return metrics.Clamp(metrics.Volatility(series)*250, 0, 100)
}

// financialRisk scores liquidity fragility: short runway, operating at a
// loss, and thin margins each add risk on top of a base of 30.
func financialRisk(biz *models.BusinessSnapshot) float64 {
	revenue := biz.CurrentRevenue()
	burn := biz.CurrentExpenses()
	runway := cappedRunway(biz.CurrentCash, burn)
	margin := metrics.ProfitMargin(revenue, burn)

	risk := 30.0
	switch {
	case runway < 2:
		risk += 40
	case runway < 4:
		risk += 25
	case runway < 6:
		risk += 10
	}
	if revenue > 0 && burn > revenue {
		risk += 25
	}
	if margin < 0.05 {
		risk += 10
	}
	return metrics.Clamp(risk, 0, 100)
}

// economicRisk derives risk from the macro indicators' deviation from
// neutral. Missing economic data scores the neutral 50.
func (e *Engine) economicRisk(econ *models.EconomicSnapshot) float64 {
	if econ == nil {
		return 50
	}
	neutral := e.bench.Neutral()
	risk := 50.0 +
		2.5*(econ.PolicyRate-neutral.PolicyRate) +
		2.5*(econ.InflationRate-neutral.Inflation) +
		3.0*(econ.UnemploymentRate-neutral.Unemployment) -
		4.0*(econ.GDPGrowth-neutral.GDPGrowth)
	return metrics.Clamp(risk, 0, 100)
}

// operationalRisk scores key-person and inexperience exposure from
// headcount and tenure.
func operationalRisk(biz *models.BusinessSnapshot) float64 {
	risk := 50.0

	switch {
	case biz.EmployeeCount < 3:
		risk += 15
	case biz.EmployeeCount < 8:
		risk += 5
	case biz.EmployeeCount > 25:
		risk -= 10
	}

	switch {
	case biz.YearsInBusiness < 2:
		risk += 20
	case biz.YearsInBusiness < 5:
		risk += 10
	case biz.YearsInBusiness >= 10:
		risk -= 15
	}

	return metrics.Clamp(risk, 0, 100)
}

func riskLevel(overall float64) string {
	switch {
	case overall >= 70:
		return RiskCritical
	case overall >= 50:
		return RiskHigh
	case overall >= 30:
		return RiskModerate
	default:
		return RiskLow
	}
}
