package analysis

import (
	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// peerSpread models the sector's productivity distribution as fixed
// multiples of the benchmark revenue per employee.
var peerSpread = []float64{0.5, 0.75, 1.0, 1.25, 1.5}

// analyzeCompetitive positions the business against sector peers on
// productivity and size, and attaches the sector's competitive-intensity
// tag and threat list.
func (e *Engine) analyzeCompetitive(biz *models.BusinessSnapshot) CompetitiveAnalysis {
	bench := e.bench.Sector(biz.Sector)
	revenue := biz.CurrentRevenue()
	revPerEmp := revenuePerEmployee(revenue, biz.EmployeeCount)

	peers := make([]float64, len(peerSpread))
	for i, m := range peerSpread {
		peers[i] = bench.RevenuePerEmployee * m
	}

	return CompetitiveAnalysis{
		ProductivityRatio:      safeDiv(revPerEmp, bench.RevenuePerEmployee),
		ProductivityPercentile: metrics.PercentileRank(revPerEmp, peers),
		SizeCategory:           sizeCategory(safeDiv(revenue, bench.AvgMonthlyRevenue)),
		Intensity:              bench.CompetitiveLevel,
		Threats:                bench.Threats,
	}
}

func sizeCategory(multiple float64) string {
	switch {
	case multiple >= 2.0:
		return SizeMajor
	case multiple >= 1.2:
		return SizeLarge
	case multiple >= 0.8:
		return SizeMedium
	case multiple >= 0.4:
		return SizeSmall
	default:
		return SizeMicro
	}
}
