// Package valuation normalizes project cost and effect entries into SEK amounts
// and aggregates them into ROI metrics.
package valuation

import (
	"math"
	"strconv"

	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
)

// Work calendar used to turn periodic values into yearly ones.
const (
	WorkDaysPerYear  = 235
	WorkWeeksPerYear = 47
	MonthsPerYear    = 12
)

// PeriodMultiplier returns how many times a value with the given timescale
// occurs in a year. one_time, per_year and unknown timescales count once.
func PeriodMultiplier(ts types.Timescale) float64 {
	switch ts {
	case types.TimescalePerDay:
		return WorkDaysPerYear
	case types.TimescalePerWeek:
		return WorkWeeksPerYear
	case types.TimescalePerMonth:
		return MonthsPerYear
	default:
		return 1
	}
}

// timescaleLabel is the timescale as shown in derivation strings.
func timescaleLabel(ts types.Timescale) string {
	if ts == "" {
		return string(types.TimescalePerYear)
	}
	return string(ts)
}

// num formats a number for derivation strings without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// finite maps NaN and ±Inf to 0. Products of large but finite inputs can
// overflow and must not leak into results.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
