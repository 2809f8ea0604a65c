package types

import (
	"encoding/json"
	"fmt"
)

// Project is a raw project record as stored and submitted by the project forms.
// Every group is optional.
type Project struct {
	ID              Text         `json:"id,omitempty"`
	Title           Text         `json:"title"`
	Intro           Text         `json:"intro,omitempty"`
	Problem         Text         `json:"problem,omitempty"`
	Opportunity     Text         `json:"opportunity,omitempty"`
	Responsible     Text         `json:"responsible,omitempty"`
	Phase           Text         `json:"phase,omitempty"`
	Areas           List[Text]   `json:"areas,omitempty"`
	ValueDimensions List[Text]   `json:"valueDimensions,omitempty"`
	BudgetDetails   *Budget      `json:"budgetDetails,omitempty"`
	CostData        *CostData    `json:"costData,omitempty"`
	EffectsData     *EffectsData `json:"effectsData,omitempty"`
	Technical       *Technical   `json:"technicalDetails,omitempty"`
	Leadership      *Leadership  `json:"leadershipDetails,omitempty"`
	Legal           *Legal       `json:"legalDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Project) UnmarshalJSON(data []byte) error {
	type plain Project
	return decodeObject(data, (*plain)(p))
}

// DecodeProject decodes a raw project record. Only syntactically invalid JSON
// is an error; fields of the wrong shape decode as their zero value.
func DecodeProject(data []byte) (*Project, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("project record is not valid JSON")
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode project record: %w", err)
	}
	return &p, nil
}

// CostEntries returns the itemized costs, or nil.
func (p *Project) CostEntries() []CostEntry {
	if p == nil || p.CostData == nil {
		return nil
	}
	return p.CostData.CostEntries
}

// EffectEntries returns the recorded effects, or nil.
func (p *Project) EffectEntries() []EffectEntry {
	if p == nil || p.EffectsData == nil {
		return nil
	}
	return p.EffectsData.EffectEntries
}

// BudgetAmount returns the budget estimate, or nil when none is recorded.
func (p *Project) BudgetAmount() *float64 {
	if p == nil || p.BudgetDetails == nil || p.BudgetDetails.BudgetAmount <= 0 {
		return nil
	}
	v := p.BudgetDetails.BudgetAmount.Float()
	return &v
}

// Budget is the overall budget estimate.
type Budget struct {
	BudgetAmount  Number `json:"budgetAmount"`
	FundingSource Text   `json:"fundingSource,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Budget) UnmarshalJSON(data []byte) error {
	type plain Budget
	return decodeObject(data, (*plain)(b))
}

// CostData holds the itemized cost breakdown.
type CostData struct {
	CostEntries List[CostEntry] `json:"costEntries"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CostData) UnmarshalJSON(data []byte) error {
	type plain CostData
	return decodeObject(data, (*plain)(c))
}

// EffectsData holds the recorded effects.
type EffectsData struct {
	EffectEntries List[EffectEntry] `json:"effectEntries"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EffectsData) UnmarshalJSON(data []byte) error {
	type plain EffectsData
	return decodeObject(data, (*plain)(e))
}

// Technical describes data and systems used by the project.
type Technical struct {
	DataTypes             List[Text] `json:"dataTypes,omitempty"`
	Systems               List[Text] `json:"systems,omitempty"`
	AIMethodology         Text       `json:"aiMethodology,omitempty"`
	DeploymentEnvironment Text       `json:"deploymentEnvironment,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Technical) UnmarshalJSON(data []byte) error {
	type plain Technical
	return decodeObject(data, (*plain)(t))
}

// Leadership identifies who runs the project.
type Leadership struct {
	ProjectLeader Text `json:"projectLeader,omitempty"`
	Organization  Text `json:"organization,omitempty"`
	ContactEmail  Text `json:"contactEmail,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Leadership) UnmarshalJSON(data []byte) error {
	type plain Leadership
	return decodeObject(data, (*plain)(l))
}

// Legal records the legal basis and data protection review.
type Legal struct {
	LegalBasis            Text `json:"legalBasis,omitempty"`
	GDPRAssessment        Text `json:"gdprAssessment,omitempty"`
	DataProtectionOfficer Text `json:"dataProtectionOfficer,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Legal) UnmarshalJSON(data []byte) error {
	type plain Legal
	return decodeObject(data, (*plain)(l))
}
