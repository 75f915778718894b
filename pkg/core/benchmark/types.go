package benchmark

// SectorBenchmark holds the baseline performance profile of a typical
// business in one sector. Monetary values are USD per month.
type SectorBenchmark struct {
	AvgMonthlyRevenue  float64  `yaml:"avg_monthly_revenue" json:"avg_monthly_revenue"`
	AvgProfitMargin    float64  `yaml:"avg_profit_margin" json:"avg_profit_margin"`
	AnnualGrowthRate   float64  `yaml:"annual_growth_rate" json:"annual_growth_rate"`
	RevenuePerEmployee float64  `yaml:"revenue_per_employee" json:"revenue_per_employee"`
	MarketRisk         float64  `yaml:"market_risk" json:"market_risk"`
	CompetitiveLevel   string   `yaml:"competitive_level" json:"competitive_level"`
	Threats            []string `yaml:"threats" json:"threats"`
}

// LocationProfile describes a region's revenue multiplier baseline and
// competition tag. Sector-specific multipliers override the baseline.
type LocationProfile struct {
	Multiplier  float64 `yaml:"multiplier" json:"multiplier"`
	Competition string  `yaml:"competition" json:"competition"`
}

// Sensitivity holds signed per-sector coefficients describing how strongly
// each macro indicator moves the sector's economic-impact score. Negative
// means the indicator is a headwind when above its neutral reference.
type Sensitivity struct {
	PolicyRate float64 `yaml:"policy_rate" json:"policy_rate"`
	Inflation  float64 `yaml:"inflation" json:"inflation"`
	Employment float64 `yaml:"employment" json:"employment"`
	Confidence float64 `yaml:"confidence" json:"confidence"`
	GDP        float64 `yaml:"gdp" json:"gdp"`
}

// Neutral holds the reference values macro indicators are measured against.
// An indicator at its neutral value contributes neither headwind nor
// tailwind.
type Neutral struct {
	PolicyRate         float64 `yaml:"policy_rate" json:"policy_rate"`
	Inflation          float64 `yaml:"inflation" json:"inflation"`
	Unemployment       float64 `yaml:"unemployment" json:"unemployment"`
	GDPGrowth          float64 `yaml:"gdp_growth" json:"gdp_growth"`
	ConsumerConfidence float64 `yaml:"consumer_confidence" json:"consumer_confidence"`
}

// tables is the raw shape of the embedded YAML document.
type tables struct {
	Version       string                        `yaml:"version"`
	DefaultSector string                        `yaml:"default_sector"`
	Sectors       map[string]SectorBenchmark    `yaml:"sectors"`
	Locations     map[string]LocationProfile    `yaml:"locations"`
	Multipliers   map[string]map[string]float64 `yaml:"multipliers"`
	Seasonal      map[string][]float64          `yaml:"seasonal"`
	Neutral       Neutral                       `yaml:"neutral"`
	Sensitivity   map[string]Sensitivity        `yaml:"sensitivity"`
}
