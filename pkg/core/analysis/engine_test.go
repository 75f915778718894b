package analysis

import (
	"math"
	"reflect"
	"testing"

	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	store, err := benchmark.Load()
	if err != nil {
		t.Fatalf("failed to load benchmark store: %v", err)
	}
	return NewEngine(store)
}

func flatSeries(value float64) []float64 {
	s := make([]float64, models.PeriodLength)
	for i := range s {
		s[i] = value
	}
	return s
}

func foodSnapshot(revenue float64) *models.BusinessSnapshot {
	return &models.BusinessSnapshot{
		BusinessID:      "biz-001",
		Sector:          models.SectorFood,
		Location:        models.LocationMidwest,
		MonthlyRevenue:  flatSeries(revenue),
		MonthlyExpenses: flatSeries(revenue * 0.85),
		CurrentCash:     revenue * 4,
		EmployeeCount:   12,
		YearsInBusiness: 6,
	}
}

func TestAnalyzeRequiresRevenueSeries(t *testing.T) {
	e := testEngine(t)

	if _, err := e.Analyze(nil, nil); err == nil {
		t.Error("Expected error for nil snapshot")
	}
	if _, err := e.Analyze(&models.BusinessSnapshot{Sector: models.SectorFood}, nil); err == nil {
		t.Error("Expected error for empty revenue series")
	}
}

func TestTopPerformerSaturation(t *testing.T) {
	// Food benchmark in the midwest is 600,000/mo at multiplier 1.0.
	// Revenue of 900,000 is exactly ratio 1.5: top performer, percentile 95.
	e := testEngine(t)

	res, err := e.Analyze(foodSnapshot(900000), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	m := res.Market
	if math.Abs(m.PerformanceRatio-1.5) > 0.0001 {
		t.Errorf("Expected ratio 1.5, got %f", m.PerformanceRatio)
	}
	if m.Category != PositionTopPerformer {
		t.Errorf("Expected top_performer, got %s", m.Category)
	}
	if m.Percentile < 95 {
		t.Errorf("Expected percentile >= 95, got %f", m.Percentile)
	}

	// Saturation, not extrapolation: a far larger ratio stays at 95.
	res2, err := e.Analyze(foodSnapshot(3000000), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res2.Market.Percentile != 95 {
		t.Errorf("Expected saturated percentile 95, got %f", res2.Market.Percentile)
	}
}

func TestBenchmarkRoundTrip(t *testing.T) {
	// Feeding the benchmark's own average values back in must land on
	// ratio ~1.0 and the "average" category.
	store, err := benchmark.Load()
	if err != nil {
		t.Fatalf("failed to load benchmark store: %v", err)
	}
	e := NewEngine(store)

	bench := store.Sector(models.SectorFood)
	biz := &models.BusinessSnapshot{
		BusinessID:      "biz-avg",
		Sector:          models.SectorFood,
		Location:        models.LocationMidwest,
		MonthlyRevenue:  flatSeries(bench.AvgMonthlyRevenue),
		MonthlyExpenses: flatSeries(bench.AvgMonthlyRevenue * (1 - bench.AvgProfitMargin)),
		CurrentCash:     bench.AvgMonthlyRevenue * 6,
		EmployeeCount:   int(bench.AvgMonthlyRevenue / bench.RevenuePerEmployee),
		YearsInBusiness: 7,
	}

	res, err := e.Analyze(biz, nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if math.Abs(res.Market.PerformanceRatio-1.0) > 0.01 {
		t.Errorf("Expected ratio ~1.0, got %f", res.Market.PerformanceRatio)
	}
	if res.Market.Category != PositionAverage {
		t.Errorf("Expected average category, got %s", res.Market.Category)
	}
}

func TestOverallScoreBounds(t *testing.T) {
	e := testEngine(t)

	cases := []*models.BusinessSnapshot{
		foodSnapshot(900000),
		foodSnapshot(10),
		{
			// All-zero revenue and expenses is well-formed and must not
			// error or escape [0,100].
			BusinessID:      "biz-zero",
			Sector:          models.SectorRetail,
			Location:        models.LocationWest,
			MonthlyRevenue:  flatSeries(0),
			MonthlyExpenses: flatSeries(0),
		},
		{
			BusinessID:      "biz-loss",
			Sector:          models.SectorTextile,
			Location:        models.LocationSoutheast,
			MonthlyRevenue:  flatSeries(10000),
			MonthlyExpenses: flatSeries(50000),
			CurrentCash:     1000,
			EmployeeCount:   1,
			YearsInBusiness: 0.5,
		},
	}

	econ := &models.EconomicSnapshot{
		PolicyRate:         9.5,
		InflationRate:      9.0,
		UnemploymentRate:   8.0,
		GDPGrowth:          -2.0,
		ConsumerConfidence: 60,
	}

	for _, biz := range cases {
		for _, e2 := range []*models.EconomicSnapshot{nil, econ} {
			res, err := e.Analyze(biz, e2)
			if err != nil {
				t.Fatalf("%s: Analyze failed: %v", biz.BusinessID, err)
			}
			if res.Overall.Score < 0 || res.Overall.Score > 100 {
				t.Errorf("%s: overall score %f outside [0,100]", biz.BusinessID, res.Overall.Score)
			}
			if res.Performance.EfficiencyScore < 0 || res.Performance.EfficiencyScore > 100 {
				t.Errorf("%s: efficiency score out of range", biz.BusinessID)
			}
			if res.Financial.Score < 0 || res.Financial.Score > 100 {
				t.Errorf("%s: health score out of range", biz.BusinessID)
			}
			if res.Growth.Score < 0 || res.Growth.Score > 100 {
				t.Errorf("%s: growth score out of range", biz.BusinessID)
			}
			if res.Risk.OverallRisk < 0 || res.Risk.OverallRisk > 100 {
				t.Errorf("%s: risk score out of range", biz.BusinessID)
			}
		}
	}
}

func TestMissingEconomicDataIsNeutral(t *testing.T) {
	e := testEngine(t)

	res, err := e.Analyze(foodSnapshot(600000), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	impact := res.Economic
	if impact.DataAvailable {
		t.Error("Expected DataAvailable=false without an economic snapshot")
	}
	if impact.Score != 50 || impact.Label != EconNeutral {
		t.Errorf("Expected neutral impact, got score %f label %s", impact.Score, impact.Label)
	}
	if res.Risk.EconomicRisk != 50 {
		t.Errorf("Expected neutral economic risk 50, got %f", res.Risk.EconomicRisk)
	}
	if res.Growth.EconomicTailwind != 0 {
		t.Errorf("Expected zero tailwind, got %f", res.Growth.EconomicTailwind)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	e := testEngine(t)
	biz := foodSnapshot(480000)
	econ := &models.EconomicSnapshot{PolicyRate: 5.5, InflationRate: 3.2, UnemploymentRate: 4.1, GDPGrowth: 2.8, ConsumerConfidence: 104}

	first, err := e.Analyze(biz, econ)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Analyze(biz, econ)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if !reflect.DeepEqual(deref(again), deref(first)) {
			t.Fatal("Analyze produced different results for identical input")
		}
	}
}

// deref copies a Result for comparison. Threats is the only slice field, so
// comparison drops it on both sides.
func deref(r *Result) Result {
	cp := *r
	cp.Competitive.Threats = nil
	return cp
}
