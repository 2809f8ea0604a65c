// Package analytics evaluates many projects concurrently and aggregates
// portfolio totals.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/carllingstrom/AI-Delning-sub000/internal/scoring"
	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
	"github.com/carllingstrom/AI-Delning-sub000/internal/valuation"
)

// DefaultWorkers is used when Evaluator.Workers is not positive.
const DefaultWorkers = 4

// ErrEmptyInput is reported for inputs with neither raw JSON nor a project.
var ErrEmptyInput = errors.New("no project data")

// Evaluator values and scores a batch of projects. A project that fails to
// decode or panics is reported in Report.Failures and does not stop the rest.
type Evaluator struct {
	Engine  *valuation.Engine
	Workers int
	Logger  *slog.Logger

	// evaluate is replaced in tests.
	evaluate func(*valuation.Engine, *types.Project) (types.Valuation, types.ProjectScore)
}

// NewEvaluator creates an Evaluator. A nil engine uses the default options
// and a nil logger uses slog.Default().
func NewEvaluator(engine *valuation.Engine, workers int, logger *slog.Logger) *Evaluator {
	return (&Evaluator{Engine: engine, Workers: workers, Logger: logger}).withDefaults()
}

func evaluateProject(engine *valuation.Engine, p *types.Project) (types.Valuation, types.ProjectScore) {
	return engine.Evaluate(p), scoring.ScoreProject(p)
}

// outcome is the per-slot result of one project.
type outcome struct {
	result  *ProjectResult
	failure *Error
}

// Evaluate runs every input through the valuation engine and the
// completeness scorer. The only error is a cancelled context.
func (e *Evaluator) Evaluate(ctx context.Context, inputs []ProjectInput) (*Report, error) {
	e = e.withDefaults()
	outcomes := make([]outcome, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.Workers)

	for i := range inputs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gCtx.Err() != nil {
				return nil
			}
			outcomes[i] = e.evaluateOne(i, inputs[i])
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch evaluation cancelled: %w", err)
	}

	report := &Report{
		Results:  make([]ProjectResult, 0, len(inputs)),
		Failures: make([]ProjectFailure, 0),
	}
	for _, o := range outcomes {
		switch {
		case o.result != nil:
			report.Results = append(report.Results, *o.result)
		case o.failure != nil:
			report.Failures = append(report.Failures, ProjectFailure{
				ProjectID: o.failure.ProjectID,
				Index:     o.failure.Index,
				Error:     o.failure.Err.Error(),
			})
		}
	}
	report.Totals = computeTotals(len(inputs), report)
	return report, nil
}

func (e *Evaluator) withDefaults() *Evaluator {
	out := *e
	if out.Engine == nil {
		out.Engine = valuation.NewEngine(valuation.DefaultOptions())
	}
	if out.Workers <= 0 {
		out.Workers = DefaultWorkers
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.evaluate == nil {
		out.evaluate = evaluateProject
	}
	return &out
}

func (e *Evaluator) evaluateOne(index int, in ProjectInput) (o outcome) {
	id := in.ID
	defer func() {
		if r := recover(); r != nil {
			o = outcome{failure: &Error{ProjectID: id, Index: index, Err: fmt.Errorf("panic: %v", r)}}
		}
		if o.failure != nil {
			e.Logger.Warn("project evaluation failed",
				"project_id", o.failure.ProjectID,
				"index", index,
				"error", o.failure.Err)
		}
	}()

	var p *types.Project
	switch {
	case len(in.Raw) > 0:
		decoded, err := types.DecodeProject(in.Raw)
		if err != nil {
			return outcome{failure: &Error{ProjectID: id, Index: index, Err: err}}
		}
		p = decoded
	case in.Project != nil:
		p = in.Project
	default:
		return outcome{failure: &Error{ProjectID: id, Index: index, Err: ErrEmptyInput}}
	}

	if id == "" {
		id = p.ID.String()
	}

	v, s := e.evaluate(e.Engine, p)
	return outcome{result: &ProjectResult{
		Index:     index,
		ProjectID: id,
		Title:     p.Title.String(),
		Valuation: v,
		Score:     s,
	}}
}

func computeTotals(projects int, r *Report) Totals {
	t := Totals{
		Projects:  projects,
		Evaluated: len(r.Results),
		Failed:    len(r.Failures),
	}

	completeness := 0
	for _, res := range r.Results {
		t.TotalCost += res.Valuation.Metrics.TotalCost
		t.TotalMonetaryValue += res.Valuation.Metrics.TotalMonetaryValue
		completeness += res.Score.Percentage
	}
	// Sums of many large projects can still overflow.
	if math.IsInf(t.TotalCost, 0) || math.IsInf(t.TotalMonetaryValue, 0) {
		t.TotalCost, t.TotalMonetaryValue = 0, 0
	}
	if t.TotalCost > 0 {
		t.PortfolioROI = (t.TotalMonetaryValue - t.TotalCost) / t.TotalCost
	}
	if t.Evaluated > 0 {
		t.AverageCompleteness = float64(completeness) / float64(t.Evaluated)
	}
	return t
}
