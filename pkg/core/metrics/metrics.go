package metrics

import "math"

// =============================================================================
// CORE NUMERIC METRICS
// Every function here is pure and total: degenerate input (empty series,
// zero denominators) yields a documented sentinel, never a panic or error.
// =============================================================================

// Trend labels returned by TrendDirection.
const (
	TrendIncreasing       = "increasing"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// slopeThreshold is the OLS slope magnitude below which a series counts as
// stable.
const slopeThreshold = 0.05

// GrowthRate returns the compound per-period growth rate between the first
// and last elements of series: (end/start)^(1/periods) - 1.
// Returns 0 if the series has fewer than 2 points or starts at or below 0.
func GrowthRate(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	start := series[0]
	end := series[len(series)-1]
	if start <= 0 {
		return 0
	}
	periods := float64(len(series) - 1)
	return math.Pow(end/start, 1.0/periods) - 1
}

// Volatility returns the coefficient of variation (stdev / mean) of series.
// Returns 0 if the series has fewer than 2 points or a zero mean.
func Volatility(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	mean := Mean(series)
	if mean == 0 {
		return 0
	}
	return StdDev(series) / mean
}

// TrendDirection classifies the ordinary-least-squares slope of value over
// index. Slopes within ±0.05 count as stable; series shorter than 3 points
// are insufficient_data.
func TrendDirection(series []float64) string {
	if len(series) < 3 {
		return TrendInsufficientData
	}

	n := float64(len(series))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range series {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return TrendStable
	}
	slope := (n*sumXY - sumX*sumY) / denom

	switch {
	case slope > slopeThreshold:
		return TrendIncreasing
	case slope < -slopeThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ProfitMargin returns (revenue-expenses)/revenue floored at 0. Margins are
// never reported negative; revenue at or below 0 yields 0.
func ProfitMargin(revenue, expenses float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return math.Max(0, (revenue-expenses)/revenue)
}

// CashRunway returns cash/monthlyBurn in months. A burn at or below 0 means
// the business is not consuming cash, so the runway is unbounded (+Inf).
// Zero cash with positive burn is a runway of 0, not an error.
func CashRunway(cash, monthlyBurn float64) float64 {
	if monthlyBurn <= 0 {
		return math.Inf(1)
	}
	return cash / monthlyBurn
}

// PercentileRank returns the rank of value within dataset on a 0-100 scale
// using the count-below plus half-count-equal convention. An empty dataset
// yields 50 (no reference population, neutral rank).
func PercentileRank(value float64, dataset []float64) float64 {
	if len(dataset) == 0 {
		return 50
	}
	var below, equal float64
	for _, v := range dataset {
		switch {
		case v < value:
			below++
		case v == value:
			equal++
		}
	}
	return (below + equal/2) / float64(len(dataset)) * 100
}

// Correlation returns the Pearson correlation of two equal-length series.
// Mismatched lengths, fewer than 2 points, or a zero-variance side yield 0.
func Correlation(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	meanX := Mean(xs)
	meanY := Mean(ys)
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// Smooth returns a simple moving average of series with the given window.
// The window is clamped to [1, len(series)]; an empty series returns an
// empty slice.
func Smooth(series []float64, window int) []float64 {
	if len(series) == 0 {
		return nil
	}
	if window < 1 {
		window = 1
	}
	if window > len(series) {
		window = len(series)
	}

	out := make([]float64, len(series))
	var sum float64
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		n := window
		if i+1 < window {
			n = i + 1
		}
		out[i] = sum / float64(n)
	}
	return out
}

// =============================================================================
// HELPERS
// =============================================================================

// Mean returns the arithmetic mean, or 0 for an empty series.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// StdDev returns the population standard deviation, or 0 for fewer than 2
// points.
func StdDev(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	mean := Mean(series)
	var ss float64
	for _, v := range series {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(series)))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
