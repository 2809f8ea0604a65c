package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1200", 1200},
		{"1 200", 1200},
		{"12,5", 12.5},
		{"1,200.50", 1200.5},
		{"25 000 kr", 25000},
		{"25000 SEK", 25000},
		{"500:-", 500},
		{"15%", 15},
		{"1\u00a0000", 1000},
		{"-300", -300},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseNumber(tt.input), "input %q", tt.input)
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
		E Number `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 40, "b": "12,5", "c": null, "d": {"x": 1}, "e": true}`), &v)
	require.NoError(t, err)

	assert.Equal(t, Number(40), v.A)
	assert.Equal(t, Number(12.5), v.B)
	assert.Equal(t, Number(0), v.C)
	assert.Equal(t, Number(0), v.D)
	assert.Equal(t, Number(0), v.E)
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Flag
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"Ja"`, true},
		{`"yes"`, true},
		{`"nej"`, false},
		{`1`, true},
		{`0`, false},
		{`null`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
		assert.Equal(t, tt.expected, f, "input %s", tt.input)
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
		D Text `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": "  Hej  ", "b": 42, "c": ["x"], "d": null}`), &v)
	require.NoError(t, err)

	assert.Equal(t, "Hej", v.A.String())
	assert.Equal(t, "42", v.B.String())
	assert.True(t, v.C.IsBlank())
	assert.True(t, v.D.IsBlank())
}

func TestList_UnmarshalJSON(t *testing.T) {
	var v struct {
		A List[Text]   `json:"a"`
		B List[Text]   `json:"b"`
		C List[Number] `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": ["x", 7, {}], "b": "not a list", "c": [1, "2", "bad"]}`), &v)
	require.NoError(t, err)

	assert.Equal(t, List[Text]{"x", "7", ""}, v.A)
	assert.Nil(t, v.B)
	assert.Equal(t, List[Number]{1, 2, 0}, v.C)
	assert.Equal(t, 2, NonBlank(v.A))
}

func TestCostEntry_WrongShapes(t *testing.T) {
	var entries List[CostEntry]
	err := json.Unmarshal([]byte(`[
		{"costType": "Konsult", "costUnit": " HOURS ", "hoursDetails": {"hours": "10", "hourlyRate": "900"}},
		{"costUnit": "fixed", "fixedDetails": "lots"},
		42
	]`), &entries)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, CostUnitHours, entries[0].CostUnit)
	assert.True(t, entries[0].CostUnit.Valid())
	require.NotNil(t, entries[0].HoursDetails)
	assert.Equal(t, Number(10), entries[0].HoursDetails.Hours)
	assert.Equal(t, Number(900), entries[0].HoursDetails.HourlyRate)
	assert.True(t, entries[0].IsLabelled())

	require.NotNil(t, entries[1].FixedDetails)
	assert.Equal(t, Number(0), entries[1].FixedDetails.FixedAmount)
	assert.False(t, entries[1].IsLabelled())

	assert.Equal(t, CostEntry{}, entries[2])
	assert.False(t, entries[2].CostUnit.Valid())
}

func TestDecodeProject(t *testing.T) {
	raw := []byte(`{
		"id": 17,
		"title": "Tolkning av fakturor",
		"areas": ["Ekonomi"],
		"budgetDetails": {"budgetAmount": "1 500 000", "fundingSource": "Vinnova"},
		"costData": {"costEntries": "none"},
		"effectsData": {"effectEntries": [{"valueDimension": "Tidsbesparing", "hasQualitative": "ja"}]},
		"technicalDetails": null,
		"legalDetails": {"gdprAssessment": "Klar"}
	}`)

	p, err := DecodeProject(raw)
	require.NoError(t, err)

	assert.Equal(t, "17", p.ID.String())
	assert.Equal(t, "Tolkning av fakturor", p.Title.String())
	require.NotNil(t, p.BudgetAmount())
	assert.Equal(t, 1500000.0, *p.BudgetAmount())
	assert.Empty(t, p.CostEntries())
	require.Len(t, p.EffectEntries(), 1)
	assert.True(t, bool(p.EffectEntries()[0].HasQualitative))
	assert.Nil(t, p.Technical)
	assert.Equal(t, "Klar", p.Legal.GDPRAssessment.String())
}

func TestDecodeProject_InvalidJSON(t *testing.T) {
	_, err := DecodeProject([]byte(`{"title": `))
	assert.Error(t, err)
}

func TestDecodeProject_NotAnObject(t *testing.T) {
	p, err := DecodeProject([]byte(`["a", "b"]`))
	require.NoError(t, err)
	assert.Equal(t, Project{}, *p)
}

func TestProject_NilAccessors(t *testing.T) {
	var p *Project

	assert.Nil(t, p.CostEntries())
	assert.Nil(t, p.EffectEntries())
	assert.Nil(t, p.BudgetAmount())

	zero := &Project{BudgetDetails: &Budget{BudgetAmount: 0}}
	assert.Nil(t, zero.BudgetAmount())
}

func TestEffectEntry_Completeness(t *testing.T) {
	financial := EffectEntry{
		HasQuantitative: true,
		QuantitativeDetails: &QuantitativeDetails{
			EffectType: EffectTypeFinancial,
			FinancialDetails: &FinancialDetails{
				ValueUnit:    ValueUnitHours,
				HoursDetails: &FinancialHours{AffectedPeople: 3, TimePerPerson: 1, HourlyRate: 450},
			},
		},
	}
	assert.True(t, financial.QuantitativeComplete())
	assert.True(t, financial.AnyComplete())

	wrongBranch := financial
	wrongBranch.QuantitativeDetails = &QuantitativeDetails{
		EffectType:       EffectTypeRedistribution,
		FinancialDetails: financial.QuantitativeDetails.FinancialDetails,
	}
	assert.False(t, wrongBranch.QuantitativeComplete())

	untyped := financial
	untyped.QuantitativeDetails = &QuantitativeDetails{
		FinancialDetails: financial.QuantitativeDetails.FinancialDetails,
	}
	assert.True(t, untyped.QuantitativeComplete())

	noRate := financial
	noRate.QuantitativeDetails = &QuantitativeDetails{
		EffectType: EffectTypeFinancial,
		FinancialDetails: &FinancialDetails{
			ValueUnit:    ValueUnitHours,
			HoursDetails: &FinancialHours{Hours: 100},
		},
	}
	assert.False(t, noRate.QuantitativeComplete())

	qualitative := EffectEntry{
		HasQualitative:     true,
		QualitativeDetails: &QualitativeDetails{Factor: "Trygghet", CurrentRating: 1, TargetRating: 10},
	}
	assert.True(t, qualitative.QualitativeComplete())

	qualitative.HasQualitative = false
	assert.False(t, qualitative.QualitativeComplete())
}

func TestFinancialDetails_CompleteNeedsPositiveValue(t *testing.T) {
	tests := []struct {
		name    string
		details FinancialDetails
		want    bool
	}{
		{name: "positive amount", details: FinancialDetails{ValueUnit: ValueUnitCurrency, CurrencyDetails: &FinancialCurrency{Amount: 5000}}, want: true},
		{name: "negative amount", details: FinancialDetails{ValueUnit: ValueUnitCurrency, CurrencyDetails: &FinancialCurrency{Amount: -5000}}},
		{name: "zero amount", details: FinancialDetails{ValueUnit: ValueUnitCurrency, CurrencyDetails: &FinancialCurrency{}}},
		{name: "positive percentage", details: FinancialDetails{ValueUnit: ValueUnitPercentage, PercentageDetails: &FinancialPercentage{Percentage: 10, BaseValue: 1000}}, want: true},
		{name: "negative percentage", details: FinancialDetails{ValueUnit: ValueUnitPercentage, PercentageDetails: &FinancialPercentage{Percentage: -10, BaseValue: 1000}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.details.Complete())
		})
	}
}

func TestEffectEntry_Dimension(t *testing.T) {
	assert.Equal(t, "Kvalitet", (&EffectEntry{ValueDimension: "Kvalitet", CustomValueDimension: "Annat"}).Dimension())
	assert.Equal(t, "Annat", (&EffectEntry{ValueDimension: " ", CustomValueDimension: "Annat"}).Dimension())
}

func TestTimescale_Or(t *testing.T) {
	assert.Equal(t, TimescalePerWeek, Timescale("").Or(TimescalePerWeek))
	assert.Equal(t, TimescalePerDay, TimescalePerDay.Or(TimescalePerWeek))
}
