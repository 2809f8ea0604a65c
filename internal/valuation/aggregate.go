package valuation

import (
	"sort"

	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
)

// ComputeROI sums a project's cost and effect entries into ROI metrics.
// When there are no cost entries, budgetAmount (if given) stands in for the
// total cost. Missing or malformed entries contribute nothing.
func (e *Engine) ComputeROI(effects []types.EffectEntry, costs []types.CostEntry, budgetAmount *float64) types.ROIMetrics {
	return e.evaluate(effects, costs, budgetAmount).Metrics
}

// Evaluate values a project and returns the metrics with their per-entry breakdown.
func (e *Engine) Evaluate(p *types.Project) types.Valuation {
	return e.evaluate(p.EffectEntries(), p.CostEntries(), p.BudgetAmount())
}

func (e *Engine) evaluate(effects []types.EffectEntry, costs []types.CostEntry, budgetAmount *float64) types.Valuation {
	v := types.Valuation{
		CostLines:   make([]types.CostLine, 0, len(costs)),
		EffectLines: make([]types.EffectLine, 0, len(effects)),
	}
	m := &v.Metrics

	for i, entry := range costs {
		amount := NormalizeCost(entry)
		m.TotalCost += amount
		v.CostLines = append(v.CostLines, types.CostLine{
			Index:    i,
			CostType: entry.CostType.String(),
			CostUnit: entry.CostUnit,
			Amount:   amount,
		})
	}
	if len(costs) == 0 && budgetAmount != nil && *budgetAmount > 0 {
		m.TotalCost = *budgetAmount
		v.BudgetFallback = true
	}

	var ratios []float64
	dimensions := make(map[string]struct{})

	for i := range effects {
		entry := &effects[i]
		line := types.EffectLine{
			Index:     i,
			Dimension: entry.Dimension(),
			Complete:  entry.AnyComplete(),
		}

		if entry.HasQuantitative && entry.QuantitativeDetails != nil {
			q := entry.QuantitativeDetails
			if nv := e.NormalizeFinancial(q.FinancialDetails); nv != nil {
				line.Financial = nv
				m.TotalMonetaryValue += nv.Value
				m.Summary.FinancialCount++
			}
			if nv := e.NormalizeRedistribution(q.RedistributionDetails); nv != nil {
				line.Redistribution = nv
				m.TotalMonetaryValue += nv.Value
				m.Summary.RedistributionCount++
			}
		}

		if entry.HasQualitative && entry.QualitativeDetails != nil {
			m.Summary.QualitativeCount++
			if ratio, ok := QualitativeRatio(entry.QualitativeDetails); ok {
				ratios = append(ratios, ratio)
				line.QualitativeRatio = &ratio
			}
		}

		if line.Complete && line.Dimension != "" {
			dimensions[line.Dimension] = struct{}{}
		}
		v.EffectLines = append(v.EffectLines, line)
	}

	m.TotalCost = finite(m.TotalCost)
	m.TotalMonetaryValue = finite(m.TotalMonetaryValue)
	m.Summary.TotalEffects = len(effects)
	m.Summary.DimensionsCovered = sortedKeys(dimensions)

	if m.TotalCost > 0 {
		m.EconomicROI = finite((m.TotalMonetaryValue - m.TotalCost) / m.TotalCost)
	}
	m.QualitativeROI = finite(mean(ratios))
	m.CombinedROI = types.CombinedROI{Economic: m.EconomicROI, Qualitative: m.QualitativeROI}
	m.PaybackPeriodYears = paybackPeriod(m.TotalCost, m.TotalMonetaryValue)

	return v
}

// paybackPeriod treats value as a yearly benefit and divides the cost by its
// monthly equivalent. Without a positive cost and benefit there is no
// payback period and 0 is returned.
func paybackPeriod(cost, value float64) float64 {
	if cost <= 0 || value <= 0 {
		return 0
	}
	return finite(cost / (value / MonthsPerYear))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
