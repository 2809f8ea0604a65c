// Package scoring measures how completely a project record is filled in.
package scoring

import (
	"math"

	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
	"github.com/carllingstrom/AI-Delning-sub000/internal/valuation"
)

// Category budgets
const (
	BasicMax      = 15
	FinancialMax  = 25
	EffectsMax    = 35
	TechnicalMax  = 15
	GovernanceMax = 10
	MaxScore      = BasicMax + FinancialMax + EffectsMax + TechnicalMax + GovernanceMax
)

// Labels for high-value gaps reported in ProjectScore.MissingHighValue.
const (
	MissingBudget         = "Budget information"
	MissingCostBreakdown  = "Detailed cost breakdown"
	MissingEffectAnalysis = "Effect analysis"
	MissingEffectDetails  = "Complete effect details"
	MissingTechnical      = "Technical information"
	MissingLeadership     = "Leadership information"
	MissingLegal          = "Legal compliance information"
)

// ScoreProject scores the completeness of a project record. A nil project
// scores 0 with every gap reported.
func ScoreProject(p *types.Project) types.ProjectScore {
	if p == nil {
		p = &types.Project{}
	}

	var missing []string
	basic := scoreBasic(p)
	financial := scoreFinancial(p, &missing)
	effects := scoreEffects(p, &missing)
	technical := scoreTechnical(p, &missing)
	governance := scoreGovernance(p, &missing)

	total := basic.Score + financial.Score + effects.Score + technical.Score + governance.Score
	percentage := int(math.Round(100 * float64(total) / float64(MaxScore)))

	if missing == nil {
		missing = []string{}
	}

	return types.ProjectScore{
		TotalScore: total,
		MaxScore:   MaxScore,
		Percentage: percentage,
		Breakdown: types.ScoreBreakdown{
			Basic:      basic,
			Financial:  financial,
			Effects:    effects,
			Technical:  technical,
			Governance: governance,
		},
		Level:            LevelFor(percentage),
		MissingHighValue: missing,
	}
}

// LevelFor maps a completeness percentage to its level.
func LevelFor(percentage int) string {
	switch {
	case percentage < 50:
		return types.LevelBasic
	case percentage < 70:
		return types.LevelDeveloped
	case percentage < 85:
		return types.LevelAdvanced
	case percentage < 95:
		return types.LevelComplete
	default:
		return types.LevelExemplary
	}
}

func scoreBasic(p *types.Project) types.CategoryScore {
	score := 0
	score += points(!p.Title.IsBlank(), 2)
	score += points(!p.Intro.IsBlank(), 2)
	score += points(!p.Problem.IsBlank(), 2)
	score += points(!p.Opportunity.IsBlank(), 2)
	score += points(!p.Responsible.IsBlank(), 2)
	score += points(!p.Phase.IsBlank(), 2)
	score += points(types.NonBlank(p.Areas) > 0, 2)
	score += points(types.NonBlank(p.ValueDimensions) > 0, 1)
	return category(score, BasicMax, "Basic information")
}

func scoreFinancial(p *types.Project, missing *[]string) types.CategoryScore {
	score := 0

	hasBudget := p.BudgetAmount() != nil
	if hasBudget {
		score += 8
	} else {
		*missing = append(*missing, MissingBudget)
	}

	entries := p.CostEntries()
	priced := 0
	labelled := len(entries) > 0
	for i := range entries {
		if valuation.NormalizeCost(entries[i]) > 0 {
			priced++
		}
		if !entries[i].IsLabelled() {
			labelled = false
		}
	}

	if priced > 0 {
		score += 10
	} else if hasBudget {
		*missing = append(*missing, MissingCostBreakdown)
	}
	score += points(priced >= 3, 3)
	score += points(labelled, 2)

	if p.BudgetDetails != nil {
		score += points(!p.BudgetDetails.FundingSource.IsBlank(), 2)
	}

	return category(score, FinancialMax, "Financial data")
}

// scoreEffects awards nothing unless at least one effect entry is fully
// completed. Dangling entries do not count.
func scoreEffects(p *types.Project, missing *[]string) types.CategoryScore {
	entries := p.EffectEntries()

	completed := 0
	quantitative := false
	qualitative := false
	dimensions := make(map[string]struct{})
	for i := range entries {
		entry := &entries[i]
		quant := entry.QuantitativeComplete()
		qual := entry.QualitativeComplete()
		if !quant && !qual {
			continue
		}
		completed++
		quantitative = quantitative || quant
		qualitative = qualitative || qual
		if d := entry.Dimension(); d != "" {
			dimensions[d] = struct{}{}
		}
	}

	if completed == 0 {
		if len(entries) == 0 {
			*missing = append(*missing, MissingEffectAnalysis)
		} else {
			*missing = append(*missing, MissingEffectDetails)
		}
		return category(0, EffectsMax, "Effects")
	}

	score := 15
	score += points(quantitative, 5)
	score += points(qualitative, 5)
	score += points(len(dimensions) >= 2, 5)
	score += points(completed >= 3, 5)
	return category(score, EffectsMax, "Effects")
}

func scoreTechnical(p *types.Project, missing *[]string) types.CategoryScore {
	t := p.Technical
	if t == nil {
		t = &types.Technical{}
	}

	hasData := types.NonBlank(t.DataTypes) > 0
	hasSystems := types.NonBlank(t.Systems) > 0
	hasMethod := !t.AIMethodology.IsBlank()

	score := points(hasData, 4) + points(hasSystems, 4) + points(hasMethod, 4) +
		points(!t.DeploymentEnvironment.IsBlank(), 3)
	if !hasData && !hasSystems && !hasMethod {
		*missing = append(*missing, MissingTechnical)
	}
	return category(score, TechnicalMax, "Technical details")
}

func scoreGovernance(p *types.Project, missing *[]string) types.CategoryScore {
	score := 0

	if l := p.Leadership; l != nil && (!l.ProjectLeader.IsBlank() || !l.Organization.IsBlank()) {
		score += 5
	} else {
		*missing = append(*missing, MissingLeadership)
	}

	if l := p.Legal; l != nil && (!l.LegalBasis.IsBlank() || !l.GDPRAssessment.IsBlank()) {
		score += 5
	} else {
		*missing = append(*missing, MissingLegal)
	}

	return category(score, GovernanceMax, "Governance")
}

func points(ok bool, n int) int {
	if ok {
		return n
	}
	return 0
}

func category(score, maxScore int, label string) types.CategoryScore {
	if score > maxScore {
		score = maxScore
	}
	return types.CategoryScore{Score: score, Max: maxScore, Label: label}
}
