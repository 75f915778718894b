package recommend

import (
	"fmt"

	"bizlens/pkg/core/analysis"
	"bizlens/pkg/core/metrics"
	"bizlens/pkg/models"
)

// Engine turns an analysis result into concrete recommended actions. Like
// the analyzer it is stateless: every method is a pure function of its
// arguments, ordered deterministically.
type Engine struct{}

// NewEngine creates a recommendation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ImmediateActions returns the actions to start within 30 days, most urgent
// first. Empty only when nothing in the analysis needs short-term action.
func (e *Engine) ImmediateActions(res *analysis.Result, biz *models.BusinessSnapshot) []Recommendation {
	var out []Recommendation
	burn := res.Financial.MonthlyBurn

	if res.Financial.Status == analysis.HealthCritical || res.Financial.Status == analysis.HealthPoor {
		out = append(out, Recommendation{
			Category:        CategoryCashFlow,
			Title:           "Stabilize cash flow",
			Description:     fmt.Sprintf("Financial health is %s with %.1f months of runway.", res.Financial.Status, res.Financial.RunwayMonths),
			SpecificAction:  "Defer non-essential spending, chase outstanding receivables, and negotiate supplier payment terms.",
			ExpectedOutcome: "One additional month of runway",
			ExpectedAmount:  burn,
			Timeframe:       "30 days",
			Difficulty:      DifficultyModerate,
		})
	}
	if res.Financial.RunwayMonths < 3 {
		out = append(out, Recommendation{
			Category:        CategoryCashFlow,
			Title:           "Arrange bridge financing",
			Description:     fmt.Sprintf("Runway of %.1f months leaves no margin for a slow month.", res.Financial.RunwayMonths),
			SpecificAction:  "Open a working-capital line of credit sized to two months of expenses before it is needed.",
			ExpectedOutcome: "Two months of buffer",
			ExpectedAmount:  burn * 2,
			Timeframe:       "30 days",
			Difficulty:      DifficultyModerate,
		})
	}
	if res.Performance.Trend == metrics.TrendDeclining {
		out = append(out, Recommendation{
			Category:        CategoryRevenue,
			Title:           "Stop the revenue slide",
			Description:     "Revenue has declined over the analysis period.",
			SpecificAction:  "Contact the top ten customers by revenue this week; win-back offers for lapsed accounts.",
			ExpectedOutcome: "Halt the decline within one quarter",
			ExpectedAmount:  res.Performance.CurrentRevenue * 0.05,
			Timeframe:       "30 days",
			Difficulty:      DifficultyEasy,
		})
	}
	if res.Financial.NetMargin > 0 && res.Financial.NetMargin < 0.08 {
		out = append(out, Recommendation{
			Category:        CategoryCost,
			Title:           "Tighten the cost base",
			Description:     fmt.Sprintf("Net margin of %.1f%% leaves little room for error.", res.Financial.NetMargin*100),
			SpecificAction:  "Review the five largest recurring expense lines for renegotiation or elimination.",
			ExpectedOutcome: "Two points of margin",
			ExpectedAmount:  res.Performance.CurrentRevenue * 0.02,
			Timeframe:       "30 days",
			Difficulty:      DifficultyEasy,
		})
	}
	return out
}

// StrategicActions returns the quarter-to-year initiatives implied by the
// market and growth analyses.
func (e *Engine) StrategicActions(res *analysis.Result, biz *models.BusinessSnapshot) []Recommendation {
	var out []Recommendation
	revenue := res.Performance.CurrentRevenue

	if res.Market.PerformanceRatio < 1.0 {
		gap := res.Market.BenchmarkRevenue - revenue
		out = append(out, Recommendation{
			Category:        CategoryMarket,
			Title:           "Close the benchmark gap",
			Description:     fmt.Sprintf("Sector peers in this location earn about $%.0f more per month.", gap),
			SpecificAction:  "Benchmark pricing and product mix against the three strongest local competitors; adjust quarterly.",
			ExpectedOutcome: "Capture half the gap within a year",
			ExpectedAmount:  gap * 6,
			Timeframe:       "12 months",
			Difficulty:      DifficultyHard,
		})
	}
	if res.Growth.Potential == analysis.GrowthHigh || res.Growth.Potential == analysis.GrowthPromising {
		out = append(out, Recommendation{
			Category:        CategoryGrowth,
			Title:           "Scale what is working",
			Description:     fmt.Sprintf("Growth potential is %s at the %s stage.", res.Growth.Potential, res.Growth.MaturityStage),
			SpecificAction:  "Document the highest-converting sales channel and double its budget before opening new ones.",
			ExpectedOutcome: "Twenty percent revenue growth",
			ExpectedAmount:  revenue * 0.2 * 12,
			Timeframe:       "12 months",
			Difficulty:      DifficultyHard,
		})
	}
	if res.Competitive.ProductivityRatio > 0 && res.Competitive.ProductivityRatio < 0.9 {
		out = append(out, Recommendation{
			Category:        CategoryProductivity,
			Title:           "Lift revenue per employee",
			Description:     fmt.Sprintf("Productivity runs at %.0f%% of the sector benchmark.", res.Competitive.ProductivityRatio*100),
			SpecificAction:  "Automate the two most time-consuming manual workflows; cross-train staff to cover peak hours.",
			ExpectedOutcome: "Benchmark-level productivity",
			ExpectedAmount:  revenue * 0.08 * 12,
			Timeframe:       "6 months",
			Difficulty:      DifficultyModerate,
		})
	}
	if res.Risk.Level == analysis.RiskCritical || res.Risk.Level == analysis.RiskHigh {
		out = append(out, Recommendation{
			Category:        CategoryRisk,
			Title:           "Reduce concentration risk",
			Description:     fmt.Sprintf("Overall risk is %s (%.0f/100).", res.Risk.Level, res.Risk.OverallRisk),
			SpecificAction:  "No single customer above 20% of revenue; secure a second supplier for critical inputs.",
			ExpectedOutcome: "Risk level down one band",
			ExpectedAmount:  0,
			Timeframe:       "6 months",
			Difficulty:      DifficultyModerate,
		})
	}
	return out
}

// InvestmentRecommendations sizes at most one concrete investment from the
// cash position and growth outlook. Degenerate input (no cash, no revenue)
// yields an empty list.
func (e *Engine) InvestmentRecommendations(res *analysis.Result, biz *models.BusinessSnapshot) []Recommendation {
	if biz.CurrentCash <= 0 || res.Performance.CurrentRevenue <= 0 {
		return nil
	}

	// Invest only what leaves six months of runway untouched.
	reserve := res.Financial.MonthlyBurn * 6
	investable := biz.CurrentCash - reserve
	if investable <= 0 {
		return nil
	}

	rec := Recommendation{
		Category:           CategoryInvestment,
		InvestmentRequired: investable,
		ExpectedAmount:     investable * 0.25,
		Timeframe:          "12 months",
	}
	switch {
	case res.Growth.Potential == analysis.GrowthHigh:
		rec.Title = "Fund capacity expansion"
		rec.Description = "High growth potential with cash beyond the safety reserve."
		rec.SpecificAction = fmt.Sprintf("Deploy up to $%.0f into capacity: equipment, inventory depth, or an additional hire.", investable)
		rec.ExpectedOutcome = "Revenue capacity ahead of demand"
		rec.Difficulty = DifficultyHard
	case res.Competitive.ProductivityRatio < 1.0:
		rec.Title = "Invest in productivity tooling"
		rec.Description = "Surplus cash and below-benchmark productivity."
		rec.SpecificAction = fmt.Sprintf("Deploy up to $%.0f into point-of-sale, inventory, or scheduling systems.", investable)
		rec.ExpectedOutcome = "Peer-level revenue per employee"
		rec.Difficulty = DifficultyModerate
	default:
		rec.Title = "Build a yield reserve"
		rec.Description = "Cash beyond the operating reserve is earning nothing."
		rec.SpecificAction = fmt.Sprintf("Move $%.0f into short-term treasuries laddered monthly.", investable)
		rec.ExpectedOutcome = "Risk-free yield on idle cash"
		rec.ExpectedAmount = investable * 0.04
		rec.Difficulty = DifficultyEasy
	}
	return []Recommendation{rec}
}

// BuildActionPlan assembles the 30/90/365-day plan from the immediate and
// strategic actions.
func (e *Engine) BuildActionPlan(res *analysis.Result, biz *models.BusinessSnapshot) ActionPlan {
	immediate := e.ImmediateActions(res, biz)
	strategic := e.StrategicActions(res, biz)

	titles := func(recs []Recommendation, max int) []string {
		var out []string
		for i, r := range recs {
			if i >= max {
				break
			}
			out = append(out, r.Title)
		}
		if len(out) == 0 {
			out = []string{"Maintain current course; monitor monthly metrics"}
		}
		return out
	}

	quarterFocus := "Convert the immediate fixes into routine practice"
	if res.Market.PerformanceRatio < 1.0 {
		quarterFocus = "Close the gap to the sector benchmark"
	}

	return ActionPlan{
		Summary: fmt.Sprintf("Overall grade %s (%.0f/100): %d immediate and %d strategic actions.",
			res.Overall.Grade, res.Overall.Score, len(immediate), len(strategic)),
		Milestones: []Milestone{
			{Horizon: "30 days", Focus: "Stabilize", Steps: titles(immediate, 3)},
			{Horizon: "90 days", Focus: quarterFocus, Steps: titles(strategic, 2)},
			{Horizon: "365 days", Focus: "Compound the gains", Steps: titles(append(strategic, e.InvestmentRecommendations(res, biz)...), 3)},
		},
	}
}
