package types

// NormalizedValue is the monetary value of one quantitative effect branch in
// SEK, with a human-readable derivation of how it was computed.
type NormalizedValue struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// ROIMetrics is the aggregated valuation of one project.
type ROIMetrics struct {
	TotalCost          float64     `json:"totalCost"`
	TotalMonetaryValue float64     `json:"totalMonetaryValue"`
	EconomicROI        float64     `json:"economicROI"`
	QualitativeROI     float64     `json:"qualitativeROI"`
	CombinedROI        CombinedROI `json:"combinedROI"`
	PaybackPeriodYears float64     `json:"paybackPeriodYears"`
	Summary            ROISummary  `json:"summary"`
}

// CombinedROI reports the economic and qualitative signals side by side.
// They are different units and are never blended into one number.
type CombinedROI struct {
	Economic    float64 `json:"economic"`
	Qualitative float64 `json:"qualitative"`
}

// ROISummary counts the effects that contributed to the metrics.
type ROISummary struct {
	TotalEffects        int      `json:"totalEffects"`
	FinancialCount      int      `json:"financialCount"`
	RedistributionCount int      `json:"redistributionCount"`
	QualitativeCount    int      `json:"qualitativeCount"`
	DimensionsCovered   []string `json:"dimensionsCovered"`
}

// Valuation is ROIMetrics together with the per-entry breakdown it was built from.
// BudgetFallback is set when TotalCost came from the budget estimate.
type Valuation struct {
	Metrics        ROIMetrics   `json:"metrics"`
	CostLines      []CostLine   `json:"costLines"`
	EffectLines    []EffectLine `json:"effectLines"`
	BudgetFallback bool         `json:"budgetFallback"`
}

// CostLine is one normalized cost entry.
type CostLine struct {
	Index    int      `json:"index"`
	CostType string   `json:"costType,omitempty"`
	CostUnit CostUnit `json:"costUnit"`
	Amount   float64  `json:"amount"`
}

// EffectLine is one normalized effect entry.
type EffectLine struct {
	Index            int              `json:"index"`
	Dimension        string           `json:"dimension,omitempty"`
	Financial        *NormalizedValue `json:"financial,omitempty"`
	Redistribution   *NormalizedValue `json:"redistribution,omitempty"`
	QualitativeRatio *float64         `json:"qualitativeRatio,omitempty"`
	Complete         bool             `json:"complete"`
}

// MonetaryValue returns the sum of the entry's quantitative branches.
func (l EffectLine) MonetaryValue() float64 {
	total := 0.0
	if l.Financial != nil {
		total += l.Financial.Value
	}
	if l.Redistribution != nil {
		total += l.Redistribution.Value
	}
	return total
}
