// Package validate owns the input contract for the analysis pipeline.
// The core assumes validated snapshots; everything that can reject a
// request lives here, ahead of the engine.
package validate

import (
	"fmt"
	"math"
	"strings"

	"bizlens/pkg/models"
)

// ValidationError carries every contract violation found in one pass, so a
// caller can report all of them at once instead of fixing them one by one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid business snapshot: %s", strings.Join(e.Violations, "; "))
}

// BusinessSnapshot checks the full field-level contract: enum membership,
// series lengths, and non-negative finite monetary values. It returns nil
// or a *ValidationError listing every violation.
func BusinessSnapshot(biz *models.BusinessSnapshot) error {
	if biz == nil {
		return &ValidationError{Violations: []string{"snapshot is required"}}
	}

	var v []string

	if !biz.Sector.Valid() {
		v = append(v, fmt.Sprintf("unknown sector %q", biz.Sector))
	}
	if !biz.Location.Valid() {
		v = append(v, fmt.Sprintf("unknown location %q", biz.Location))
	}

	if len(biz.MonthlyRevenue) != models.PeriodLength {
		v = append(v, fmt.Sprintf("monthly_revenue must have exactly %d entries, got %d", models.PeriodLength, len(biz.MonthlyRevenue)))
	}
	if len(biz.MonthlyExpenses) != models.PeriodLength {
		v = append(v, fmt.Sprintf("monthly_expenses must have exactly %d entries, got %d", models.PeriodLength, len(biz.MonthlyExpenses)))
	}

	v = append(v, checkSeries("monthly_revenue", biz.MonthlyRevenue)...)
	v = append(v, checkSeries("monthly_expenses", biz.MonthlyExpenses)...)

	if biz.CurrentCash < 0 || math.IsNaN(biz.CurrentCash) || math.IsInf(biz.CurrentCash, 0) {
		v = append(v, "current_cash must be a non-negative finite number")
	}
	if biz.EmployeeCount < 0 {
		v = append(v, "employee_count must not be negative")
	}
	if biz.YearsInBusiness < 0 {
		v = append(v, "years_in_business must not be negative")
	}
	if biz.AsOfMonth < 0 || biz.AsOfMonth > 12 {
		v = append(v, "as_of_month must be 0 (unknown) or 1-12")
	}

	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

// EconomicSnapshot checks the optional macro indicator set. nil is valid;
// the analyzer degrades to neutral baselines.
func EconomicSnapshot(econ *models.EconomicSnapshot) error {
	if econ == nil {
		return nil
	}
	var v []string
	check := func(name string, value float64) {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			v = append(v, fmt.Sprintf("%s must be a finite number", name))
		}
	}
	check("policy_rate", econ.PolicyRate)
	check("inflation_rate", econ.InflationRate)
	check("unemployment_rate", econ.UnemploymentRate)
	check("gdp_growth", econ.GDPGrowth)
	check("consumer_confidence", econ.ConsumerConfidence)

	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

func checkSeries(name string, series []float64) []string {
	var v []string
	for i, value := range series {
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			v = append(v, fmt.Sprintf("%s[%d] must be a non-negative finite number", name, i))
		}
	}
	return v
}
