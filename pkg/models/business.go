package models

// PeriodLength is the fixed number of monthly data points every snapshot
// carries. Revenue and expense series must both have exactly this length.
const PeriodLength = 12

// Sector identifies the industry a business operates in.
type Sector string

const (
	SectorElectronics Sector = "electronics"
	SectorTextile     Sector = "textile"
	SectorFood        Sector = "food"
	SectorRetail      Sector = "retail"
	SectorAuto        Sector = "auto"
)

// AllSectors lists every recognized sector, in declaration order.
func AllSectors() []Sector {
	return []Sector{SectorElectronics, SectorTextile, SectorFood, SectorRetail, SectorAuto}
}

// Valid reports whether s is a member of the sector enumeration.
func (s Sector) Valid() bool {
	switch s {
	case SectorElectronics, SectorTextile, SectorFood, SectorRetail, SectorAuto:
		return true
	}
	return false
}

// Location identifies the US region a business operates in.
type Location string

const (
	LocationNortheast Location = "northeast"
	LocationSoutheast Location = "southeast"
	LocationMidwest   Location = "midwest"
	LocationSouthwest Location = "southwest"
	LocationWest      Location = "west"
)

// AllLocations lists every recognized location, in declaration order.
func AllLocations() []Location {
	return []Location{LocationNortheast, LocationSoutheast, LocationMidwest, LocationSouthwest, LocationWest}
}

// Valid reports whether l is a member of the location enumeration.
func (l Location) Valid() bool {
	switch l {
	case LocationNortheast, LocationSoutheast, LocationMidwest, LocationSouthwest, LocationWest:
		return true
	}
	return false
}

// BusinessSnapshot is the immutable per-call input to the analysis pipeline.
// MonthlyRevenue and MonthlyExpenses are ordered oldest-first and must both
// be PeriodLength long. All monetary values are non-negative USD.
type BusinessSnapshot struct {
	BusinessID      string    `json:"business_id"`
	Name            string    `json:"name,omitempty"`
	Sector          Sector    `json:"sector"`
	Location        Location  `json:"location"`
	MonthlyRevenue  []float64 `json:"monthly_revenue"`
	MonthlyExpenses []float64 `json:"monthly_expenses"`
	CurrentCash     float64   `json:"current_cash"`
	EmployeeCount   int       `json:"employee_count"`
	YearsInBusiness float64   `json:"years_in_business"`
	// AsOfMonth is the calendar month (1-12) the last revenue figure belongs
	// to. 0 means unknown; seasonal adjustment is skipped.
	AsOfMonth int `json:"as_of_month,omitempty"`
	Challenges      []string  `json:"challenges,omitempty"`
	Goals           []string  `json:"goals,omitempty"`
}

// CurrentRevenue returns the most recent monthly revenue, or 0 for an empty
// series.
func (b *BusinessSnapshot) CurrentRevenue() float64 {
	if len(b.MonthlyRevenue) == 0 {
		return 0
	}
	return b.MonthlyRevenue[len(b.MonthlyRevenue)-1]
}

// CurrentExpenses returns the most recent monthly operating expense, or 0
// for an empty series.
func (b *BusinessSnapshot) CurrentExpenses() float64 {
	if len(b.MonthlyExpenses) == 0 {
		return 0
	}
	return b.MonthlyExpenses[len(b.MonthlyExpenses)-1]
}

// EconomicSnapshot is the macro indicator set valid as of analysis time.
// It is optional; the analyzer substitutes neutral baselines when absent.
// Rates are percentages (policy rate 5.25 means 5.25%), ConsumerConfidence
// is an index around 100.
type EconomicSnapshot struct {
	PolicyRate         float64 `json:"policy_rate"`
	InflationRate      float64 `json:"inflation_rate"`
	UnemploymentRate   float64 `json:"unemployment_rate"`
	GDPGrowth          float64 `json:"gdp_growth"`
	ConsumerConfidence float64 `json:"consumer_confidence"`
}
