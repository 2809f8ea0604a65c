package valuation

import (
	"fmt"
	"math"

	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
)

// NormalizeFinancial reduces a one-directional gain to a SEK amount. It
// returns nil only when d is nil.
func (e *Engine) NormalizeFinancial(d *types.FinancialDetails) *types.NormalizedValue {
	if d == nil {
		return nil
	}

	var value float64
	var desc string
	var ts types.Timescale

	switch d.ValueUnit {
	case types.ValueUnitHours:
		value, desc, ts = financialHours(d.HoursDetails, d.Timescale)
	case types.ValueUnitCurrency:
		value, desc, ts = financialCurrency(d.CurrencyDetails, d.Timescale)
	case types.ValueUnitPercentage:
		value, desc, ts = financialPercentage(d.PercentageDetails, d.Timescale)
	case types.ValueUnitCount:
		value, desc, ts = financialCount(d.CountDetails, d.Timescale)
	case types.ValueUnitOther:
		value, desc, ts = financialOther(d.OtherDetails, d.Timescale)
	default:
		return &types.NormalizedValue{Value: 0, Description: unknownUnit(d.ValueUnit)}
	}

	value, desc = e.annualize(value, desc, d.AnnualizationYears, ts)
	if value < 0 {
		value = 0
	}
	return &types.NormalizedValue{Value: finite(value), Description: desc}
}

// NormalizeRedistribution reduces a before/after reallocation to the SEK
// magnitude of the difference. The direction only shows in the description.
// It returns nil only when d is nil.
func (e *Engine) NormalizeRedistribution(d *types.RedistributionDetails) *types.NormalizedValue {
	if d == nil {
		return nil
	}

	var value float64
	var desc string
	var ts types.Timescale

	switch d.ValueUnit {
	case types.ValueUnitHours:
		value, desc, ts = redistributionHours(d.HoursDetails, d.Timescale)
	case types.ValueUnitCurrency:
		value, desc, ts = redistributionCurrency(d.CurrencyDetails, d.Timescale)
	case types.ValueUnitPercentage:
		value, desc, ts = redistributionPercentage(d.PercentageDetails, d.Timescale)
	case types.ValueUnitCount:
		value, desc, ts = redistributionCount(d.CountDetails, d.Timescale)
	case types.ValueUnitOther:
		value, desc, ts = redistributionOther(d.OtherDetails, d.Timescale)
	default:
		return &types.NormalizedValue{Value: 0, Description: unknownUnit(d.ValueUnit)}
	}

	value, desc = e.annualize(value, desc, d.AnnualizationYears, ts)
	return &types.NormalizedValue{Value: finite(math.Abs(value)), Description: desc}
}

// annualize scales value by the impact horizon. one_time values are never
// annualized and horizons of one year or less leave the value unchanged.
func (e *Engine) annualize(value float64, desc string, years types.Number, ts types.Timescale) (float64, string) {
	if ts == types.TimescaleOneTime || years <= 1 {
		return value, desc
	}
	value *= years.Float()
	desc = fmt.Sprintf("%s, × %s years", desc, num(years.Float()))
	if e.opts.LegacyMonthlyAnnualization && ts == types.TimescalePerMonth {
		value *= MonthsPerYear
		desc += " × 12"
	}
	return value, desc
}

// QualitativeRatio returns the relative improvement (target − current) / current.
// ok is false when the details are missing or the current rating is not
// positive. Negative ratios are returned as is.
func QualitativeRatio(q *types.QualitativeDetails) (ratio float64, ok bool) {
	if q == nil || q.CurrentRating <= 0 {
		return 0, false
	}
	current := q.CurrentRating.Float()
	ratio = finite((q.TargetRating.Float() - current) / current)
	return ratio, true
}

// ClampForDisplay clamps a qualitative ratio at 0 for display.
func ClampForDisplay(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	return ratio
}

func unknownUnit(u types.ValueUnit) string {
	if u == "" {
		return "no value unit"
	}
	return fmt.Sprintf("unknown value unit %q", string(u))
}

func missingGroup(unit types.ValueUnit) (float64, string, types.Timescale) {
	return 0, fmt.Sprintf("no %s details", unit), ""
}

// -----------------------------------------------------------------------------
// Financial
// -----------------------------------------------------------------------------

func financialHours(h *types.FinancialHours, fallback types.Timescale) (float64, string, types.Timescale) {
	if h == nil {
		return missingGroup(types.ValueUnitHours)
	}
	ts := h.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	rate := h.HourlyRate.Float()

	var totalHours float64
	var basis string
	if h.AffectedPeople > 0 && h.TimePerPerson > 0 {
		totalHours = h.AffectedPeople.Float() * h.TimePerPerson.Float() * mult
		basis = fmt.Sprintf("%s people × %s h × %s (%s)",
			num(h.AffectedPeople.Float()), num(h.TimePerPerson.Float()), num(mult), timescaleLabel(ts))
	} else {
		totalHours = h.Hours.Float() * mult
		basis = fmt.Sprintf("%s h × %s (%s)", num(h.Hours.Float()), num(mult), timescaleLabel(ts))
	}

	value := totalHours * rate
	return value, fmt.Sprintf("%s = %s h × %s SEK/h", basis, num(totalHours), num(rate)), ts
}

func financialCurrency(c *types.FinancialCurrency, fallback types.Timescale) (float64, string, types.Timescale) {
	if c == nil {
		return missingGroup(types.ValueUnitCurrency)
	}
	ts := c.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	value := c.Amount.Float() * mult
	return value, fmt.Sprintf("%s SEK × %s (%s)", num(c.Amount.Float()), num(mult), timescaleLabel(ts)), ts
}

func financialPercentage(p *types.FinancialPercentage, fallback types.Timescale) (float64, string, types.Timescale) {
	if p == nil {
		return missingGroup(types.ValueUnitPercentage)
	}
	ts := p.Timescale.Or(fallback)
	value := p.Percentage.Float() / 100 * p.BaseValue.Float()
	return value, fmt.Sprintf("%s%% of %s SEK", num(p.Percentage.Float()), num(p.BaseValue.Float())), ts
}

func financialCount(c *types.FinancialCount, fallback types.Timescale) (float64, string, types.Timescale) {
	if c == nil {
		return missingGroup(types.ValueUnitCount)
	}
	ts := c.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	value := c.Count.Float() * c.ValuePerUnit.Float() * mult
	return value, fmt.Sprintf("%s units × %s SEK × %s (%s)",
		num(c.Count.Float()), num(c.ValuePerUnit.Float()), num(mult), timescaleLabel(ts)), ts
}

func financialOther(o *types.FinancialOther, fallback types.Timescale) (float64, string, types.Timescale) {
	if o == nil {
		return missingGroup(types.ValueUnitOther)
	}
	ts := o.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	value := o.Value.Float() * o.ValuePerUnit.Float() * mult
	return value, fmt.Sprintf("%s %s × %s SEK × %s (%s)",
		num(o.Value.Float()), unitLabel(o.Unit), num(o.ValuePerUnit.Float()), num(mult), timescaleLabel(ts)), ts
}

// -----------------------------------------------------------------------------
// Redistribution
// -----------------------------------------------------------------------------

// direction names the sign of a before − after difference.
func direction(diff float64) string {
	if diff < 0 {
		return "extra"
	}
	return "saved"
}

func redistributionHours(h *types.RedistributionHours, fallback types.Timescale) (float64, string, types.Timescale) {
	if h == nil {
		return missingGroup(types.ValueUnitHours)
	}
	ts := h.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	rate := h.HourlyRate.Float()

	current := sideHours(h.CurrentAffectedPeople, h.AffectedPeople, h.CurrentTimePerPerson, h.CurrentHours, mult)
	next := sideHours(h.NewAffectedPeople, h.AffectedPeople, h.NewTimePerPerson, h.NewHours, mult)
	diff := current - next

	value := math.Abs(diff) * rate
	return value, fmt.Sprintf("%s h → %s h (%s): %s h %s × %s SEK/h",
		num(current), num(next), timescaleLabel(ts), num(math.Abs(diff)), direction(diff), num(rate)), ts
}

// sideHours is the yearly hours of one side of a redistribution: people ×
// time per person when both are known, the flat hour figure otherwise.
func sideHours(people, sharedPeople, timePerPerson, flat types.Number, mult float64) float64 {
	if people <= 0 {
		people = sharedPeople
	}
	if people > 0 && timePerPerson > 0 {
		return people.Float() * timePerPerson.Float() * mult
	}
	return flat.Float() * mult
}

func redistributionCurrency(c *types.RedistributionCurrency, fallback types.Timescale) (float64, string, types.Timescale) {
	if c == nil {
		return missingGroup(types.ValueUnitCurrency)
	}
	ts := c.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	diff := c.CurrentAmount.Float() - c.NewAmount.Float()
	value := math.Abs(diff) * mult
	return value, fmt.Sprintf("%s SEK → %s SEK: %s SEK %s × %s (%s)",
		num(c.CurrentAmount.Float()), num(c.NewAmount.Float()), num(math.Abs(diff)), direction(diff), num(mult), timescaleLabel(ts)), ts
}

func redistributionPercentage(p *types.RedistributionPercentage, fallback types.Timescale) (float64, string, types.Timescale) {
	if p == nil {
		return missingGroup(types.ValueUnitPercentage)
	}
	ts := p.Timescale.Or(fallback)
	base := p.BaseValue.Float()
	current := p.CurrentPercentage.Float() / 100 * base
	next := p.NewPercentage.Float() / 100 * base
	diff := current - next
	return math.Abs(diff), fmt.Sprintf("%s%% → %s%% of %s SEK: %s SEK %s",
		num(p.CurrentPercentage.Float()), num(p.NewPercentage.Float()), num(base), num(math.Abs(diff)), direction(diff)), ts
}

func redistributionCount(c *types.RedistributionCount, fallback types.Timescale) (float64, string, types.Timescale) {
	if c == nil {
		return missingGroup(types.ValueUnitCount)
	}
	ts := c.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	diff := c.CurrentCount.Float() - c.NewCount.Float()
	value := math.Abs(diff) * c.ValuePerUnit.Float() * mult
	return value, fmt.Sprintf("%s → %s units: %s %s × %s SEK × %s (%s)",
		num(c.CurrentCount.Float()), num(c.NewCount.Float()), num(math.Abs(diff)), direction(diff),
		num(c.ValuePerUnit.Float()), num(mult), timescaleLabel(ts)), ts
}

func redistributionOther(o *types.RedistributionOther, fallback types.Timescale) (float64, string, types.Timescale) {
	if o == nil {
		return missingGroup(types.ValueUnitOther)
	}
	ts := o.Timescale.Or(fallback)
	mult := PeriodMultiplier(ts)
	diff := o.CurrentValue.Float() - o.NewValue.Float()
	value := math.Abs(diff) * o.ValuePerUnit.Float() * mult
	return value, fmt.Sprintf("%s → %s %s: %s %s × %s SEK × %s (%s)",
		num(o.CurrentValue.Float()), num(o.NewValue.Float()), unitLabel(o.Unit), num(math.Abs(diff)), direction(diff),
		num(o.ValuePerUnit.Float()), num(mult), timescaleLabel(ts)), ts
}

func unitLabel(u types.Text) string {
	if u.IsBlank() {
		return "units"
	}
	return u.String()
}
