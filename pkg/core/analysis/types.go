package analysis

// Market position categories, keyed off the performance ratio.
const (
	PositionTopPerformer    = "top_performer"
	PositionAboveAverage    = "above_average"
	PositionAverage         = "average"
	PositionBelowAverage    = "below_average"
	PositionUnderperforming = "underperforming"
)

// Financial health statuses, keyed off the health score.
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthPoor      = "poor"
	HealthCritical  = "critical"
)

// Growth potential labels.
const (
	GrowthHigh      = "high"
	GrowthPromising = "promising"
	GrowthModerate  = "moderate"
	GrowthLimited   = "limited"
	GrowthMinimal   = "minimal"
)

// Risk levels.
const (
	RiskCritical = "critical"
	RiskHigh     = "high"
	RiskModerate = "moderate"
	RiskLow      = "low"
)

// Economic climate labels.
const (
	EconStrongTailwind = "strong_tailwind"
	EconTailwind       = "tailwind"
	EconNeutral        = "neutral"
	EconHeadwind       = "headwind"
	EconStrongHeadwind = "strong_headwind"
)

// Business maturity stages, derived from years in business.
const (
	MaturityStartup     = "startup"
	MaturityGrowth      = "growth"
	MaturityMature      = "mature"
	MaturityEstablished = "established"
)

// Size categories, derived from the revenue multiple of the benchmark.
const (
	SizeMajor  = "major"
	SizeLarge  = "large"
	SizeMedium = "medium"
	SizeSmall  = "small"
	SizeMicro  = "micro"
)

// Result is the complete analyzer output for one snapshot. It is owned by
// the call that produced it; the engine keeps no reference to it. Every
// bounded score is clamped to its documented range before Result is
// returned, and every categorical field is drawn from the constant sets
// above.
type Result struct {
	BenchmarkVersion string              `json:"benchmark_version"`
	Performance      PerformanceMetrics  `json:"performance_metrics"`
	Market           MarketPosition      `json:"market_position"`
	Financial        FinancialHealth     `json:"financial_health"`
	Growth           GrowthAnalysis      `json:"growth_analysis"`
	Risk             RiskAssessment      `json:"risk_assessment"`
	Economic         EconomicImpact      `json:"economic_impact"`
	Competitive      CompetitiveAnalysis `json:"competitive_analysis"`
	Overall          OverallScore        `json:"overall_score"`
}

// PerformanceMetrics holds the raw operating metrics plus the efficiency
// score. RunwayMonths is capped at maxRunwayMonths so the struct stays
// JSON-serializable even when the burn rate is zero.
type PerformanceMetrics struct {
	CurrentRevenue     float64 `json:"current_revenue"`
	GrowthRate         float64 `json:"growth_rate"`
	AnnualizedGrowth   float64 `json:"annualized_growth"`
	Volatility         float64 `json:"volatility"`
	Trend              string  `json:"trend"`
	ProfitMargin       float64 `json:"profit_margin"`
	RevenuePerEmployee float64 `json:"revenue_per_employee"`
	RunwayMonths       float64 `json:"runway_months"`
	SeasonalFactor     float64 `json:"seasonal_factor"`
	AdjustedRevenue    float64 `json:"seasonally_adjusted_revenue"`
	EfficiencyScore    float64 `json:"efficiency_score"`
}

// MarketPosition compares current revenue against the sector/location
// benchmark.
type MarketPosition struct {
	BenchmarkRevenue   float64 `json:"benchmark_revenue"`
	LocationMultiplier float64 `json:"location_multiplier"`
	PerformanceRatio   float64 `json:"performance_ratio"`
	Percentile         float64 `json:"percentile"`
	Category           string  `json:"category"`
	Competition        string  `json:"competition"`
}

// FinancialHealth is the 0-100 health score and its status bucket.
type FinancialHealth struct {
	Score        float64 `json:"score"`
	Status       string  `json:"status"`
	MonthlyBurn  float64 `json:"monthly_burn"`
	RunwayMonths float64 `json:"runway_months"`
	NetMargin    float64 `json:"net_margin"`
}

// GrowthAnalysis is the 0-100 growth score with its maturity scaling.
type GrowthAnalysis struct {
	Score              float64 `json:"score"`
	Potential          string  `json:"potential"`
	MaturityStage      string  `json:"maturity_stage"`
	MaturityMultiplier float64 `json:"maturity_multiplier"`
	RevenueGrowth      float64 `json:"revenue_growth"`
	EconomicTailwind   float64 `json:"economic_tailwind"`
}

// RiskAssessment holds the five component risks, each 0-100, and their
// weighted combination.
type RiskAssessment struct {
	VolatilityRisk  float64 `json:"volatility_risk"`
	FinancialRisk   float64 `json:"financial_risk"`
	MarketRisk      float64 `json:"market_risk"`
	EconomicRisk    float64 `json:"economic_risk"`
	OperationalRisk float64 `json:"operational_risk"`
	OverallRisk     float64 `json:"overall_risk"`
	Level           string  `json:"level"`
}

// EconomicImpact scores the macro climate for the sector. All sub-scores
// are centered at 50; DataAvailable is false when no economic snapshot was
// supplied and every score is the neutral 50.
type EconomicImpact struct {
	InterestRateScore float64 `json:"interest_rate_score"`
	InflationScore    float64 `json:"inflation_score"`
	EmploymentScore   float64 `json:"employment_score"`
	ConfidenceScore   float64 `json:"confidence_score"`
	GDPScore          float64 `json:"gdp_score"`
	Score             float64 `json:"score"`
	Label             string  `json:"label"`
	DataAvailable     bool    `json:"data_available"`
}

// CompetitiveAnalysis positions the business against sector peers.
type CompetitiveAnalysis struct {
	ProductivityRatio      float64  `json:"productivity_ratio"`
	ProductivityPercentile float64  `json:"productivity_percentile"`
	SizeCategory           string   `json:"size_category"`
	Intensity              string   `json:"intensity"`
	Threats                []string `json:"threats"`
}

// OverallScore folds the sub-analyses into one 0-100 score and a letter
// grade. The component fields are the already-weighted contributions, so
// they sum to Score before clamping.
type OverallScore struct {
	Score               float64 `json:"score"`
	Grade               string  `json:"grade"`
	EfficiencyComponent float64 `json:"efficiency_component"`
	MarketComponent     float64 `json:"market_component"`
	HealthComponent     float64 `json:"health_component"`
	GrowthComponent     float64 `json:"growth_component"`
	RiskComponent       float64 `json:"risk_component"`
}
