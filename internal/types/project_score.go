package types

// Completeness levels, from least to most complete.
const (
	LevelBasic     = "Grundläggande"
	LevelDeveloped = "Utvecklad"
	LevelAdvanced  = "Avancerad"
	LevelComplete  = "Komplett"
	LevelExemplary = "Exemplarisk"
)

// ProjectScore is the data-completeness score of one project.
type ProjectScore struct {
	TotalScore       int            `json:"totalScore"`
	MaxScore         int            `json:"maxScore"`
	Percentage       int            `json:"percentage"`
	Breakdown        ScoreBreakdown `json:"breakdown"`
	Level            string         `json:"level"`
	MissingHighValue []string       `json:"missingHighValue"`
}

// ScoreBreakdown holds the five category scores.
type ScoreBreakdown struct {
	Basic      CategoryScore `json:"basic"`
	Financial  CategoryScore `json:"financial"`
	Effects    CategoryScore `json:"effects"`
	Technical  CategoryScore `json:"technical"`
	Governance CategoryScore `json:"governance"`
}

// Categories returns the category scores in display order.
func (b ScoreBreakdown) Categories() []CategoryScore {
	return []CategoryScore{b.Basic, b.Financial, b.Effects, b.Technical, b.Governance}
}

// CategoryScore is the score of one category.
type CategoryScore struct {
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}
