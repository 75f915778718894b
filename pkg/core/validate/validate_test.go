package validate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"bizlens/pkg/models"
)

func validSnapshot() *models.BusinessSnapshot {
	series := make([]float64, models.PeriodLength)
	for i := range series {
		series[i] = 100000
	}
	expenses := make([]float64, models.PeriodLength)
	for i := range expenses {
		expenses[i] = 80000
	}
	return &models.BusinessSnapshot{
		BusinessID:      "biz-1",
		Sector:          models.SectorRetail,
		Location:        models.LocationWest,
		MonthlyRevenue:  series,
		MonthlyExpenses: expenses,
		CurrentCash:     250000,
		EmployeeCount:   8,
		YearsInBusiness: 3,
	}
}

func TestValidSnapshotPasses(t *testing.T) {
	if err := BusinessSnapshot(validSnapshot()); err != nil {
		t.Errorf("Expected valid snapshot, got %v", err)
	}
}

func TestUnknownEnumsRejected(t *testing.T) {
	biz := validSnapshot()
	biz.Sector = "mining"
	biz.Location = "karachi"

	err := BusinessSnapshot(biz)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(verr.Violations) != 2 {
		t.Errorf("Expected 2 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
	if !strings.Contains(err.Error(), "mining") {
		t.Errorf("Expected sector name in error, got %q", err.Error())
	}
}

func TestSeriesLengthEnforced(t *testing.T) {
	biz := validSnapshot()
	biz.MonthlyRevenue = biz.MonthlyRevenue[:6]

	err := BusinessSnapshot(biz)
	if err == nil {
		t.Fatal("Expected validation error for short series")
	}
}

func TestAllViolationsCollected(t *testing.T) {
	biz := validSnapshot()
	biz.Sector = "mining"
	biz.CurrentCash = -5
	biz.EmployeeCount = -1
	biz.MonthlyRevenue[3] = math.NaN()

	var verr *ValidationError
	if !errors.As(BusinessSnapshot(biz), &verr) {
		t.Fatal("Expected *ValidationError")
	}
	if len(verr.Violations) != 4 {
		t.Errorf("Expected 4 violations, got %d: %v", len(verr.Violations), verr.Violations)
	}
}

func TestNilSnapshotRejected(t *testing.T) {
	if err := BusinessSnapshot(nil); err == nil {
		t.Error("Expected error for nil snapshot")
	}
}

func TestEconomicSnapshotOptional(t *testing.T) {
	if err := EconomicSnapshot(nil); err != nil {
		t.Errorf("nil economic snapshot must be valid, got %v", err)
	}
	if err := EconomicSnapshot(&models.EconomicSnapshot{PolicyRate: 5.25}); err != nil {
		t.Errorf("Expected valid economic snapshot, got %v", err)
	}
	if err := EconomicSnapshot(&models.EconomicSnapshot{InflationRate: math.Inf(1)}); err == nil {
		t.Error("Expected error for infinite indicator")
	}
}
