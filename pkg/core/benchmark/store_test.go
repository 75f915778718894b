package benchmark

import (
	"testing"

	"bizlens/pkg/models"
)

func TestLoadEmbeddedTables(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Version() == "" {
		t.Error("Expected a version tag")
	}

	// Every declared sector and location must resolve.
	for _, sec := range models.AllSectors() {
		b := s.Sector(sec)
		if b.AvgMonthlyRevenue <= 0 {
			t.Errorf("sector %s: expected positive benchmark revenue", sec)
		}
		if b.RevenuePerEmployee <= 0 {
			t.Errorf("sector %s: expected positive revenue per employee", sec)
		}
	}
	for _, loc := range models.AllLocations() {
		if c := s.Competition(loc); c == "" {
			t.Errorf("location %s: expected a competition tag", loc)
		}
	}
}

func TestSectorFallback(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Missing sector falls back to the default sector, never fails.
	unknown := s.Sector(models.Sector("fishing"))
	def := s.Sector(s.DefaultSector())
	if unknown.AvgMonthlyRevenue != def.AvgMonthlyRevenue || unknown.AvgProfitMargin != def.AvgProfitMargin {
		t.Errorf("Expected default sector values for unknown sector")
	}
}

func TestMultiplierResolution(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Sector override beats the location baseline.
	if m := s.Multiplier(models.SectorElectronics, models.LocationWest); m != 1.30 {
		t.Errorf("Expected electronics/west override 1.30, got %f", m)
	}
	// No override: location baseline applies.
	if m := s.Multiplier(models.SectorRetail, models.LocationNortheast); m != 1.15 {
		t.Errorf("Expected northeast baseline 1.15, got %f", m)
	}
	// Food in the midwest is the reference pair used across the analyzer
	// tests: multiplier must be exactly 1.0.
	if m := s.Multiplier(models.SectorFood, models.LocationMidwest); m != 1.0 {
		t.Errorf("Expected food/midwest multiplier 1.0, got %f", m)
	}
	// Unknown everything: neutral 1.0.
	if m := s.Multiplier(models.Sector("fishing"), models.Location("alaska")); m != 1.0 {
		t.Errorf("Expected fallback multiplier 1.0, got %f", m)
	}
}

func TestSeasonalFactor(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f := s.SeasonalFactor(models.SectorRetail, 12); f <= 1.0 {
		t.Errorf("Expected December retail factor above 1.0, got %f", f)
	}
	// Month 0 means unknown: neutral factor.
	if f := s.SeasonalFactor(models.SectorRetail, 0); f != 1.0 {
		t.Errorf("Expected neutral factor for month 0, got %f", f)
	}
	if f := s.SeasonalFactor(models.SectorRetail, 13); f != 1.0 {
		t.Errorf("Expected neutral factor for month 13, got %f", f)
	}
}

func TestLoadRejectsMalformedTables(t *testing.T) {
	if _, err := loadFrom([]byte("version: \"x\"\ndefault_sector: nope\n")); err == nil {
		t.Error("Expected error for default sector without an entry")
	}
	if _, err := loadFrom([]byte("not: [valid")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
