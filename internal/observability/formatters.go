// Package observability provides human-readable summaries of valuations and
// completeness scores for the CLI and the text endpoints.
package observability

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/carllingstrom/AI-Delning-sub000/internal/analytics"
	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
	"github.com/carllingstrom/AI-Delning-sub000/internal/valuation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	swedish = message.NewPrinter(language.Swedish)
	title   = cases.Title(language.Swedish)
)

// FormatSEK formats an amount in whole kronor with Swedish digit grouping.
func FormatSEK(v float64) string {
	return swedish.Sprintf("%v kr", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// FormatPercent formats a ratio (1.3 = 130 %) with one decimal.
func FormatPercent(ratio float64) string {
	return swedish.Sprintf("%v %%", number.Decimal(ratio*100, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}

// FormatYears formats a payback period, or "–" when there is none.
func FormatYears(years float64) string {
	if years <= 0 {
		return "–"
	}
	return swedish.Sprintf("%v år", number.Decimal(years, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
}

// Printer handles formatted output for summaries
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(heading string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, heading)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintValuation outputs the ROI metrics and the largest cost and effect lines.
func (p *Printer) PrintValuation(v *types.Valuation) {
	if v == nil {
		return
	}
	m := v.Metrics

	var sb strings.Builder
	costLabel := "Total cost:"
	if v.BudgetFallback {
		costLabel = "Total cost (budget):"
	}
	sb.WriteString(fmt.Sprintf("%-22s %s\n", costLabel, FormatSEK(m.TotalCost)))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Monetary value:", FormatSEK(m.TotalMonetaryValue)))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Economic ROI:", FormatPercent(m.EconomicROI)))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Qualitative ROI:", FormatPercent(valuation.ClampForDisplay(m.QualitativeROI))))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Payback period:", FormatYears(m.PaybackPeriodYears)))
	sb.WriteString(fmt.Sprintf("%-22s %d (%d financial, %d redistribution, %d qualitative)\n", "Effects:",
		m.Summary.TotalEffects, m.Summary.FinancialCount, m.Summary.RedistributionCount, m.Summary.QualitativeCount))
	if len(m.Summary.DimensionsCovered) > 0 {
		sb.WriteString(fmt.Sprintf("%-22s %s\n", "Dimensions:", strings.Join(m.Summary.DimensionsCovered, ", ")))
	}

	if len(v.CostLines) > 0 {
		sb.WriteString("\nCosts:\n")
		count := min(len(v.CostLines), maxItemsToShow)
		for i := 0; i < count; i++ {
			line := v.CostLines[i]
			label := line.CostType
			if label == "" {
				label = string(line.CostUnit)
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", title.String(label), FormatSEK(line.Amount)))
		}
		if len(v.CostLines) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(v.CostLines)-maxItemsToShow))
		}
	}

	var valued []types.EffectLine
	for _, line := range v.EffectLines {
		if line.MonetaryValue() > 0 {
			valued = append(valued, line)
		}
	}
	if len(valued) > 0 {
		sb.WriteString("\nValued effects:\n")
		count := min(len(valued), maxItemsToShow)
		for i := 0; i < count; i++ {
			line := valued[i]
			label := line.Dimension
			if label == "" {
				label = fmt.Sprintf("effect %d", line.Index+1)
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", label, FormatSEK(line.MonetaryValue())))
		}
		if len(valued) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(valued)-maxItemsToShow))
		}
	}

	p.printBox("VALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the completeness score with its category breakdown.
func (p *Printer) PrintScore(s *types.ProjectScore) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness: %d/%d (%d %%) %s\n\n", s.TotalScore, s.MaxScore, s.Percentage, s.Level))
	for _, c := range s.Breakdown.Categories() {
		sb.WriteString(fmt.Sprintf("  %-20s %2d/%-2d %s\n", c.Label, c.Score, c.Max, bar(c.Score, c.Max)))
	}

	if len(s.MissingHighValue) > 0 {
		sb.WriteString("\nMissing:\n")
		for _, m := range s.MissingHighValue {
			sb.WriteString(fmt.Sprintf("  • %s\n", m))
		}
	}

	p.printBox("DATA COMPLETENESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs a project heading followed by its valuation and score.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(project *types.Project, v *types.Valuation, s *types.ProjectScore) {
	if project != nil && !project.Title.IsBlank() {
		fmt.Fprintf(p.out, "%s\n\n", project.Title.String())
	}
	p.PrintValuation(v)
	p.PrintScore(s)
}

// PrintPortfolio outputs batch evaluation totals.
func (p *Printer) PrintPortfolio(t *analytics.Totals) {
	if t == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-22s %d (%d evaluated, %d failed)\n", "Projects:", t.Projects, t.Evaluated, t.Failed))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Total cost:", FormatSEK(t.TotalCost)))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Monetary value:", FormatSEK(t.TotalMonetaryValue)))
	sb.WriteString(fmt.Sprintf("%-22s %s\n", "Portfolio ROI:", FormatPercent(t.PortfolioROI)))
	sb.WriteString(fmt.Sprintf("%-22s %.0f %%", "Avg. completeness:", t.AverageCompleteness))

	p.printBox("PORTFOLIO", sb.String())
}

// PrintFailures lists the projects a batch could not evaluate.
func (p *Printer) PrintFailures(failures []analytics.ProjectFailure) {
	if len(failures) == 0 {
		return
	}

	var sb strings.Builder
	for _, f := range failures {
		id := f.ProjectID
		if id == "" {
			id = fmt.Sprintf("#%d", f.Index)
		}
		sb.WriteString(fmt.Sprintf("• %s: %s\n", id, f.Error))
	}
	p.printBox("FAILED PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

func bar(score, maxScore int) string {
	const width = 20
	if maxScore <= 0 {
		return ""
	}
	filled := score * width / maxScore
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
