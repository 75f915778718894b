package recommend

// Recommendation categories.
const (
	CategoryCashFlow    = "cash_flow"
	CategoryRevenue     = "revenue"
	CategoryCost        = "cost_control"
	CategoryMarket      = "market_position"
	CategoryGrowth      = "growth"
	CategoryRisk        = "risk_reduction"
	CategoryInvestment  = "investment"
	CategoryProductivity = "productivity"
)

// Difficulty labels.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
)

// Recommendation is one recommended action. Records are created fresh per
// analysis call; implementation tracking belongs to the storage layer, not
// here.
type Recommendation struct {
	Category           string  `json:"category"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	SpecificAction     string  `json:"specific_action"`
	ExpectedOutcome    string  `json:"expected_outcome"`
	ExpectedAmount     float64 `json:"expected_amount"`
	Timeframe          string  `json:"timeframe"`
	Difficulty         string  `json:"difficulty"`
	InvestmentRequired float64 `json:"investment_required"`
}

// Milestone is one step of the action plan.
type Milestone struct {
	Horizon string   `json:"horizon"`
	Focus   string   `json:"focus"`
	Steps   []string `json:"steps"`
}

// ActionPlan is the phased 30/90/365-day plan assembled from the same
// analysis.
type ActionPlan struct {
	Summary    string      `json:"summary"`
	Milestones []Milestone `json:"milestones"`
}
