package analytics

import (
	"encoding/json"
	"fmt"

	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
)

// ProjectInput is one project submitted for batch evaluation. Raw takes
// precedence over Project when both are set.
type ProjectInput struct {
	ID      string
	Raw     json.RawMessage
	Project *types.Project
}

// ProjectResult is the evaluation of one project.
type ProjectResult struct {
	Index     int                `json:"index"`
	ProjectID string             `json:"projectId"`
	Title     string             `json:"title"`
	Valuation types.Valuation    `json:"valuation"`
	Score     types.ProjectScore `json:"score"`
}

// ProjectFailure records a project that could not be evaluated.
type ProjectFailure struct {
	ProjectID string `json:"projectId"`
	Index     int    `json:"index"`
	Error     string `json:"error"`
}

// Totals aggregates the successfully evaluated projects.
type Totals struct {
	Projects            int     `json:"projects"`
	Evaluated           int     `json:"evaluated"`
	Failed              int     `json:"failed"`
	TotalCost           float64 `json:"totalCost"`
	TotalMonetaryValue  float64 `json:"totalMonetaryValue"`
	PortfolioROI        float64 `json:"portfolioROI"`
	AverageCompleteness float64 `json:"averageCompleteness"`
}

// Report is the outcome of a batch evaluation. Results and Failures are in
// input order.
type Report struct {
	Results  []ProjectResult  `json:"results"`
	Failures []ProjectFailure `json:"failures"`
	Totals   Totals           `json:"totals"`
}

// Error is the failure of a single project within a batch.
type Error struct {
	ProjectID string
	Index     int
	Err       error
}

func (e *Error) Error() string {
	if e.ProjectID != "" {
		return fmt.Sprintf("project %s (#%d): %v", e.ProjectID, e.Index, e.Err)
	}
	return fmt.Sprintf("project #%d: %v", e.Index, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
