package valuation

import "github.com/carllingstrom/AI-Delning-sub000/internal/types"

// NormalizeCost reduces one cost entry to a SEK amount. Entries with an
// unknown unit or a missing detail group are worth 0. The result is never
// negative and never overflows to infinity.
func NormalizeCost(entry types.CostEntry) float64 {
	var amount float64
	switch entry.CostUnit {
	case types.CostUnitHours:
		if d := entry.HoursDetails; d != nil {
			amount = d.Hours.Float() * d.HourlyRate.Float()
		}
	case types.CostUnitFixed:
		if d := entry.FixedDetails; d != nil {
			amount = d.FixedAmount.Float()
		}
	case types.CostUnitMonthly:
		if d := entry.MonthlyDetails; d != nil {
			amount = d.MonthlyAmount.Float() * duration(d.MonthlyDuration)
		}
	case types.CostUnitYearly:
		if d := entry.YearlyDetails; d != nil {
			amount = d.YearlyAmount.Float() * duration(d.YearlyDuration)
		}
	}
	if amount < 0 {
		return 0
	}
	return finite(amount)
}

// TotalCost sums NormalizeCost over entries in slice order.
func TotalCost(entries []types.CostEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += NormalizeCost(entry)
	}
	return finite(total)
}

// duration defaults an absent or non-positive duration to 1.
func duration(n types.Number) float64 {
	if n <= 0 {
		return 1
	}
	return n.Float()
}
