package valuation

import "github.com/carllingstrom/AI-Delning-sub000/internal/types"

// Options tunes behaviour where historical figures and economic correctness
// disagree.
type Options struct {
	// LegacyMonthlyAnnualization multiplies annualized per_month values by an
	// extra 12 on top of the monthly period multiplier. Older published
	// figures were computed this way; it double counts the months.
	LegacyMonthlyAnnualization bool
}

// DefaultOptions returns the corrected behaviour.
func DefaultOptions() Options {
	return Options{}
}

// Engine values projects. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Options returns the engine's options.
func (e *Engine) Options() Options {
	return e.opts
}

var defaultEngine = NewEngine(DefaultOptions())

// NormalizeFinancial values financial details with the default options.
func NormalizeFinancial(d *types.FinancialDetails) *types.NormalizedValue {
	return defaultEngine.NormalizeFinancial(d)
}

// NormalizeRedistribution values redistribution details with the default options.
func NormalizeRedistribution(d *types.RedistributionDetails) *types.NormalizedValue {
	return defaultEngine.NormalizeRedistribution(d)
}

// ComputeROI aggregates a project's entries with the default options.
func ComputeROI(effects []types.EffectEntry, costs []types.CostEntry, budgetAmount *float64) types.ROIMetrics {
	return defaultEngine.ComputeROI(effects, costs, budgetAmount)
}

// Evaluate values a project with the default options.
func Evaluate(p *types.Project) types.Valuation {
	return defaultEngine.Evaluate(p)
}
