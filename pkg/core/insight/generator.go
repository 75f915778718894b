package insight

import (
	"fmt"
	"sort"

	"bizlens/pkg/core/analysis"
	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// topN is how many problems and how many opportunities survive ranking.
const topN = 3

// Generate derives the primary insight and the ranked problem and
// opportunity lists from an analysis result. It is a pure function of its
// inputs: identical (result, snapshot) pairs always produce identical
// output, including ordering.
func Generate(res *analysis.Result, biz *models.BusinessSnapshot) (Insight, []Finding, []Finding) {
	primary := primaryInsight(res)
	problems := rank(problemCandidates(res, biz))
	opportunities := rank(opportunityCandidates(res, biz))
	return primary, problems, opportunities
}

// primaryInsight is a priority-ordered decision table: the first matching
// rule wins and fixes the type, urgency, and confidence together. The rule
// order is deliberate; do not reorder.
func primaryInsight(res *analysis.Result) Insight {
	ratio := res.Market.PerformanceRatio
	trend := res.Performance.Trend
	facts := []string{
		fmt.Sprintf("performance ratio %.2f against a benchmark of $%.0f/month", ratio, res.Market.BenchmarkRevenue),
		fmt.Sprintf("revenue trend: %s", trend),
		fmt.Sprintf("financial health: %s (%.0f/100)", res.Financial.Status, res.Financial.Score),
	}

	switch {
	case res.Financial.Status == analysis.HealthCritical:
		return Insight{
			Type:    TypeCriticalFinancial,
			Urgency: UrgencyImmediate,
			Title:   "Cash position needs immediate attention",
			Message: fmt.Sprintf("Financial health is critical with %.1f months of runway. Stabilizing cash flow takes priority over every other initiative.", res.Financial.RunwayMonths),
			Facts:   facts, Confidence: 0.95,
		}
	case ratio < 0.7 && trend == metrics.TrendDeclining:
		return Insight{
			Type:    TypeUnderperformance,
			Urgency: UrgencyHigh,
			Title:   "Revenue is well below benchmark and falling",
			Message: fmt.Sprintf("Revenue runs at %.0f%% of the sector benchmark and the trend is declining. Without intervention the gap will keep widening.", ratio*100),
			Facts:   facts, Confidence: 0.90,
		}
	case ratio < 0.8:
		return Insight{
			Type:    TypePerformanceGap,
			Urgency: UrgencyMedium,
			Title:   "Meaningful gap to the sector benchmark",
			Message: fmt.Sprintf("Revenue is %.0f%% of what a typical peer earns. Closing the gap is worth roughly $%.0f per month.", ratio*100, res.Market.BenchmarkRevenue-res.Performance.CurrentRevenue),
			Facts:   facts, Confidence: 0.85,
		}
	case ratio > 1.2 && trend == metrics.TrendIncreasing:
		return Insight{
			Type:    TypeTopPerformer,
			Urgency: UrgencyLow,
			Title:   "Outperforming the sector and still growing",
			Message: fmt.Sprintf("Revenue is %.0f%% of benchmark with an increasing trend. The position supports reinvesting in what is already working.", ratio*100),
			Facts:   facts, Confidence: 0.90,
		}
	case ratio >= 0.8 && ratio <= 1.2:
		return Insight{
			Type:    TypeSteadyAverage,
			Urgency: UrgencyLow,
			Title:   "Performing in line with the sector",
			Message: "Performance sits in the typical range for the sector and location. Targeted improvements in margin or productivity are the likeliest lever.",
			Facts:   facts, Confidence: 0.80,
		}
	case ratio > 1.0 && trend == metrics.TrendDeclining:
		return Insight{
			Type:    TypeErodingLeader,
			Urgency: UrgencyMedium,
			Title:   "Strong position, eroding trend",
			Message: "Revenue still beats the benchmark but has been declining. Leaders that ignore erosion give the advantage back.",
			Facts:   facts, Confidence: 0.85,
		}
	default:
		return Insight{
			Type:    TypeMixedSignals,
			Urgency: UrgencyLow,
			Title:   "Mixed performance signals",
			Message: "The numbers point in different directions. The ranked findings below order what matters most.",
			Facts:   facts, Confidence: 0.75,
		}
	}
}

// problemCandidates pools problem findings contributed by each
// sub-analysis. Each carries a fixed impact score used only for ranking.
func problemCandidates(res *analysis.Result, biz *models.BusinessSnapshot) []Finding {
	var out []Finding
	revenue := res.Performance.CurrentRevenue
	bench := res.Market.BenchmarkRevenue

	if res.Financial.Status == analysis.HealthCritical || res.Financial.Status == analysis.HealthPoor {
		shortfall := res.Financial.MonthlyBurn*3 - biz.CurrentCash
		if shortfall < 0 {
			shortfall = 0
		}
		out = append(out, Finding{
			Kind: KindProblem, Type: "cash_pressure",
			Title:        "Cash reserves are thin",
			Description:  fmt.Sprintf("Financial health is %s; a three-month buffer is short by about $%.0f.", res.Financial.Status, shortfall),
			ImpactAmount: shortfall, ImpactScore: 90, Urgency: UrgencyImmediate,
		})
	}
	if res.Financial.RunwayMonths < 3 {
		out = append(out, Finding{
			Kind: KindProblem, Type: "short_runway",
			Title:        "Runway under three months",
			Description:  fmt.Sprintf("Current cash covers %.1f months of expenses.", res.Financial.RunwayMonths),
			ImpactAmount: res.Financial.MonthlyBurn * 3, ImpactScore: 85, Urgency: UrgencyImmediate,
		})
	}
	if res.Performance.Trend == metrics.TrendDeclining {
		out = append(out, Finding{
			Kind: KindProblem, Type: "declining_revenue",
			Title:        "Revenue trend is declining",
			Description:  "Monthly revenue has been trending down over the analysis period.",
			ImpactAmount: revenue * 0.1 * 12, ImpactScore: 75, Urgency: UrgencyHigh,
		})
	}
	if res.Market.PerformanceRatio < 0.8 && bench > revenue {
		out = append(out, Finding{
			Kind: KindProblem, Type: "benchmark_gap",
			Title:        "Earning less than sector peers",
			Description:  fmt.Sprintf("Revenue trails the sector/location benchmark by $%.0f per month.", bench-revenue),
			ImpactAmount: (bench - revenue) * 12, ImpactScore: 70, Urgency: UrgencyMedium,
		})
	}
	if res.Risk.Level == analysis.RiskCritical || res.Risk.Level == analysis.RiskHigh {
		out = append(out, Finding{
			Kind: KindProblem, Type: "elevated_risk",
			Title:        fmt.Sprintf("Overall risk is %s", res.Risk.Level),
			Description:  fmt.Sprintf("Combined risk scores %.0f/100; the financial component weighs heaviest.", res.Risk.OverallRisk),
			ImpactAmount: revenue * 0.05 * 12, ImpactScore: 65, Urgency: UrgencyHigh,
		})
	}
	if res.Performance.Volatility > 0.25 {
		out = append(out, Finding{
			Kind: KindProblem, Type: "volatile_revenue",
			Title:        "Revenue swings month to month",
			Description:  fmt.Sprintf("Coefficient of variation is %.2f; unstable revenue makes planning and borrowing harder.", res.Performance.Volatility),
			ImpactAmount: revenue * res.Performance.Volatility, ImpactScore: 55, Urgency: UrgencyMedium,
		})
	}
	if res.Economic.DataAvailable && (res.Economic.Label == analysis.EconHeadwind || res.Economic.Label == analysis.EconStrongHeadwind) {
		out = append(out, Finding{
			Kind: KindProblem, Type: "economic_headwind",
			Title:        "Macro climate works against the sector",
			Description:  fmt.Sprintf("Economic impact scores %.0f/100 (%s) for this sector.", res.Economic.Score, res.Economic.Label),
			ImpactAmount: revenue * 0.03 * 12, ImpactScore: 50, Urgency: UrgencyLow,
		})
	}
	return out
}

// opportunityCandidates pools opportunity findings the same way.
func opportunityCandidates(res *analysis.Result, biz *models.BusinessSnapshot) []Finding {
	var out []Finding
	revenue := res.Performance.CurrentRevenue
	bench := res.Market.BenchmarkRevenue

	if res.Market.PerformanceRatio < 1.0 && bench > revenue {
		out = append(out, Finding{
			Kind: KindOpportunity, Type: "close_benchmark_gap",
			Title:        "Headroom to the sector benchmark",
			Description:  fmt.Sprintf("Typical peers in this sector and location earn $%.0f more per month.", bench-revenue),
			ImpactAmount: (bench - revenue) * 12, ImpactScore: 80, Ease: "moderate",
		})
	}
	if res.Financial.NetMargin > 0 && res.Financial.NetMargin < 0.10 && revenue > 0 {
		uplift := (0.10 - res.Financial.NetMargin) * revenue * 12
		out = append(out, Finding{
			Kind: KindOpportunity, Type: "margin_improvement",
			Title:        "Margin below the sector's reach",
			Description:  fmt.Sprintf("Lifting net margin to 10%% is worth about $%.0f per year.", uplift),
			ImpactAmount: uplift, ImpactScore: 75, Ease: "moderate",
		})
	}
	if (res.Growth.Potential == analysis.GrowthHigh || res.Growth.Potential == analysis.GrowthPromising) && res.Financial.RunwayMonths >= 6 {
		out = append(out, Finding{
			Kind: KindOpportunity, Type: "expansion_ready",
			Title:        "Positioned to fund expansion",
			Description:  fmt.Sprintf("Growth potential is %s and the cash runway (%.0f months) can absorb the investment.", res.Growth.Potential, res.Financial.RunwayMonths),
			ImpactAmount: revenue * 0.2 * 12, ImpactScore: 70, Ease: "hard",
		})
	}
	if res.Competitive.ProductivityRatio > 0 && res.Competitive.ProductivityRatio < 0.9 {
		out = append(out, Finding{
			Kind: KindOpportunity, Type: "productivity_gap",
			Title:        "Revenue per employee trails peers",
			Description:  fmt.Sprintf("Productivity runs at %.0f%% of the sector benchmark; process or tooling improvements close this cheaply.", res.Competitive.ProductivityRatio*100),
			ImpactAmount: revenue * 0.08 * 12, ImpactScore: 65, Ease: "easy",
		})
	}
	if res.Economic.DataAvailable && (res.Economic.Label == analysis.EconTailwind || res.Economic.Label == analysis.EconStrongTailwind) {
		out = append(out, Finding{
			Kind: KindOpportunity, Type: "economic_tailwind",
			Title:        "Macro climate favors the sector",
			Description:  fmt.Sprintf("Economic impact scores %.0f/100 (%s); conditions favor moving early.", res.Economic.Score, res.Economic.Label),
			ImpactAmount: revenue * 0.05 * 12, ImpactScore: 60, Ease: "easy",
		})
	}
	if res.Performance.SeasonalFactor > 0 && res.Performance.SeasonalFactor < 0.95 && biz.AsOfMonth != 0 {
		out = append(out, Finding{
			Kind: KindOpportunity, Type: "seasonal_upswing",
			Title:        "Stronger months are ahead",
			Description:  fmt.Sprintf("The current month is seasonally weak for this sector (factor %.2f); stocking and staffing for the upswing captures it.", res.Performance.SeasonalFactor),
			ImpactAmount: revenue * 0.1, ImpactScore: 50, Ease: "easy",
		})
	}
	return out
}

// rank sorts candidates by impact score descending and keeps the top three.
// The sort is stable so equal scores keep their contribution order, which
// the determinism guarantee depends on.
func rank(candidates []Finding) []Finding {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ImpactScore > candidates[j].ImpactScore
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
