package benchmark

import (
	_ "embed"
	"fmt"

	"bizlens/pkg/models"

	"gopkg.in/yaml.v2"
)

//go:embed data/benchmarks.yaml
var rawTables []byte

// Store is the read-only benchmark reference data handle. It is loaded once
// at process start and is safe for unsynchronized concurrent reads; nothing
// mutates it after Load returns.
type Store struct {
	version       string
	defaultSector models.Sector
	sectors       map[models.Sector]SectorBenchmark
	locations     map[models.Location]LocationProfile
	multipliers   map[models.Sector]map[models.Location]float64
	seasonal      map[models.Sector][]float64
	neutral       Neutral
	sensitivity   map[models.Sector]Sensitivity
}

// Load parses the embedded reference tables. It fails only on a malformed
// or incomplete document, which means a broken build, not bad user input.
func Load() (*Store, error) {
	return loadFrom(rawTables)
}

func loadFrom(raw []byte) (*Store, error) {
	var t tables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark tables: %w", err)
	}
	if t.Version == "" {
		return nil, fmt.Errorf("benchmark tables missing version")
	}

	def := models.Sector(t.DefaultSector)
	if _, ok := t.Sectors[t.DefaultSector]; !ok {
		return nil, fmt.Errorf("default sector %q has no benchmark entry", t.DefaultSector)
	}

	s := &Store{
		version:       t.Version,
		defaultSector: def,
		sectors:       make(map[models.Sector]SectorBenchmark, len(t.Sectors)),
		locations:     make(map[models.Location]LocationProfile, len(t.Locations)),
		multipliers:   make(map[models.Sector]map[models.Location]float64, len(t.Multipliers)),
		seasonal:      make(map[models.Sector][]float64, len(t.Seasonal)),
		neutral:       t.Neutral,
		sensitivity:   make(map[models.Sector]Sensitivity, len(t.Sensitivity)),
	}
	for k, v := range t.Sectors {
		s.sectors[models.Sector(k)] = v
	}
	for k, v := range t.Locations {
		s.locations[models.Location(k)] = v
	}
	for sec, byLoc := range t.Multipliers {
		m := make(map[models.Location]float64, len(byLoc))
		for loc, mult := range byLoc {
			m[models.Location(loc)] = mult
		}
		s.multipliers[models.Sector(sec)] = m
	}
	for k, v := range t.Seasonal {
		if len(v) != 12 {
			return nil, fmt.Errorf("seasonal factors for %q: expected 12 months, got %d", k, len(v))
		}
		s.seasonal[models.Sector(k)] = v
	}
	for k, v := range t.Sensitivity {
		s.sensitivity[models.Sector(k)] = v
	}
	return s, nil
}

// Version returns the reference-data version tag.
func (s *Store) Version() string { return s.version }

// DefaultSector returns the sector used as the fallback for missing keys.
func (s *Store) DefaultSector() models.Sector { return s.defaultSector }

// Sector returns the benchmark profile for sector, falling back to the
// default sector for missing keys. The lookup never fails.
func (s *Store) Sector(sector models.Sector) SectorBenchmark {
	if b, ok := s.sectors[sector]; ok {
		return b
	}
	return s.sectors[s.defaultSector]
}

// Multiplier resolves the revenue multiplier for a (sector, location) pair.
// Resolution order: sector-specific override, location baseline, 1.0.
func (s *Store) Multiplier(sector models.Sector, location models.Location) float64 {
	if byLoc, ok := s.multipliers[sector]; ok {
		if m, ok := byLoc[location]; ok {
			return m
		}
	}
	if p, ok := s.locations[location]; ok {
		return p.Multiplier
	}
	return 1.0
}

// Competition returns the location's competition tag, "moderate" if unknown.
func (s *Store) Competition(location models.Location) string {
	if p, ok := s.locations[location]; ok {
		return p.Competition
	}
	return "moderate"
}

// SeasonalFactor returns the demand factor for a sector and calendar month
// (1-12). Out-of-range months and unknown sectors yield the neutral 1.0.
func (s *Store) SeasonalFactor(sector models.Sector, month int) float64 {
	if month < 1 || month > 12 {
		return 1.0
	}
	factors, ok := s.seasonal[sector]
	if !ok {
		factors, ok = s.seasonal[s.defaultSector]
		if !ok {
			return 1.0
		}
	}
	return factors[month-1]
}

// Neutral returns the macro-indicator reference values.
func (s *Store) Neutral() Neutral { return s.neutral }

// Sensitivity returns the sector's macro sensitivity coefficients, falling
// back to the default sector's.
func (s *Store) Sensitivity(sector models.Sector) Sensitivity {
	if c, ok := s.sensitivity[sector]; ok {
		return c
	}
	return s.sensitivity[s.defaultSector]
}
