package types

// Rating scale bounds for qualitative effects.
const (
	MinRating = 1
	MaxRating = 10
)

// EffectType selects which quantitative branch an effect uses.
type EffectType string

// Effect types
const (
	EffectTypeFinancial      EffectType = "financial"
	EffectTypeRedistribution EffectType = "redistribution"
)

// UnmarshalJSON implements json.Unmarshaler.
func (t *EffectType) UnmarshalJSON(data []byte) error {
	*t = EffectType(enumFromJSON(data))
	return nil
}

// ValueUnit discriminates the five quantitative value shapes.
type ValueUnit string

// Value units
const (
	ValueUnitHours      ValueUnit = "hours"
	ValueUnitCurrency   ValueUnit = "currency"
	ValueUnitPercentage ValueUnit = "percentage"
	ValueUnitCount      ValueUnit = "count"
	ValueUnitOther      ValueUnit = "other"
)

// UnmarshalJSON implements json.Unmarshaler.
func (u *ValueUnit) UnmarshalJSON(data []byte) error {
	*u = ValueUnit(enumFromJSON(data))
	return nil
}

// Timescale is the period a quantitative value refers to.
type Timescale string

// Timescales
const (
	TimescalePerDay   Timescale = "per_day"
	TimescalePerWeek  Timescale = "per_week"
	TimescalePerMonth Timescale = "per_month"
	TimescalePerYear  Timescale = "per_year"
	TimescaleOneTime  Timescale = "one_time"
)

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timescale) UnmarshalJSON(data []byte) error {
	*t = Timescale(enumFromJSON(data))
	return nil
}

// Or returns t, or fallback when t is empty.
func (t Timescale) Or(fallback Timescale) Timescale {
	if t == "" {
		return fallback
	}
	return t
}

// EffectEntry is one recorded benefit claim tied to a value dimension.
type EffectEntry struct {
	ValueDimension       Text                 `json:"valueDimension,omitempty"`
	CustomValueDimension Text                 `json:"customValueDimension,omitempty"`
	HasQualitative       Flag                 `json:"hasQualitative"`
	HasQuantitative      Flag                 `json:"hasQuantitative"`
	QualitativeDetails   *QualitativeDetails  `json:"qualitativeDetails,omitempty"`
	QuantitativeDetails  *QuantitativeDetails `json:"quantitativeDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EffectEntry) UnmarshalJSON(data []byte) error {
	type plain EffectEntry
	return decodeObject(data, (*plain)(e))
}

// Dimension returns the value dimension label, falling back to the custom label.
func (e *EffectEntry) Dimension() string {
	if !e.ValueDimension.IsBlank() {
		return e.ValueDimension.String()
	}
	return e.CustomValueDimension.String()
}

// QualitativeComplete reports whether the qualitative branch is filled in
// well enough to be counted.
func (e *EffectEntry) QualitativeComplete() bool {
	if !e.HasQualitative || e.QualitativeDetails == nil {
		return false
	}
	q := e.QualitativeDetails
	return !q.Factor.IsBlank() && inRatingRange(q.CurrentRating) && inRatingRange(q.TargetRating)
}

// QuantitativeComplete reports whether the quantitative branch named by
// effectType carries every input its value unit needs. Without an
// effectType either branch may qualify.
func (e *EffectEntry) QuantitativeComplete() bool {
	if !e.HasQuantitative || e.QuantitativeDetails == nil {
		return false
	}
	q := e.QuantitativeDetails
	switch q.EffectType {
	case EffectTypeFinancial:
		return q.FinancialDetails.Complete()
	case EffectTypeRedistribution:
		return q.RedistributionDetails.Complete()
	default:
		return q.FinancialDetails.Complete() || q.RedistributionDetails.Complete()
	}
}

// AnyComplete reports whether at least one branch is complete.
func (e *EffectEntry) AnyComplete() bool {
	return e.QualitativeComplete() || e.QuantitativeComplete()
}

func inRatingRange(n Number) bool {
	return n >= MinRating && n <= MaxRating
}

// QualitativeDetails is a rating-scale improvement claim.
type QualitativeDetails struct {
	Factor             Text   `json:"factor"`
	CurrentRating      Number `json:"currentRating"`
	TargetRating       Number `json:"targetRating"`
	AnnualizationYears Number `json:"annualizationYears,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *QualitativeDetails) UnmarshalJSON(data []byte) error {
	type plain QualitativeDetails
	return decodeObject(data, (*plain)(d))
}

// QuantitativeDetails holds the monetary branches of an effect.
type QuantitativeDetails struct {
	EffectType            EffectType             `json:"effectType"`
	FinancialDetails      *FinancialDetails      `json:"financialDetails,omitempty"`
	RedistributionDetails *RedistributionDetails `json:"redistributionDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *QuantitativeDetails) UnmarshalJSON(data []byte) error {
	type plain QuantitativeDetails
	return decodeObject(data, (*plain)(d))
}

// -----------------------------------------------------------------------------
// Financial (one-directional gain)
// -----------------------------------------------------------------------------

// FinancialDetails is a gain expressed in one of five value units.
type FinancialDetails struct {
	ValueUnit          ValueUnit            `json:"valueUnit"`
	Timescale          Timescale            `json:"timescale,omitempty"`
	AnnualizationYears Number               `json:"annualizationYears,omitempty"`
	HoursDetails       *FinancialHours      `json:"hoursDetails,omitempty"`
	CurrencyDetails    *FinancialCurrency   `json:"currencyDetails,omitempty"`
	PercentageDetails  *FinancialPercentage `json:"percentageDetails,omitempty"`
	CountDetails       *FinancialCount      `json:"countDetails,omitempty"`
	OtherDetails       *FinancialOther      `json:"otherDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FinancialDetails) UnmarshalJSON(data []byte) error {
	type plain FinancialDetails
	return decodeObject(data, (*plain)(d))
}

// Complete reports whether the group selected by ValueUnit has its required inputs.
func (d *FinancialDetails) Complete() bool {
	if d == nil {
		return false
	}
	switch d.ValueUnit {
	case ValueUnitHours:
		h := d.HoursDetails
		return h != nil && h.HourlyRate > 0 &&
			((h.AffectedPeople > 0 && h.TimePerPerson > 0) || h.Hours > 0)
	case ValueUnitCurrency:
		return d.CurrencyDetails != nil && d.CurrencyDetails.Amount > 0
	case ValueUnitPercentage:
		p := d.PercentageDetails
		return p != nil && p.Percentage > 0 && p.BaseValue > 0
	case ValueUnitCount:
		c := d.CountDetails
		return c != nil && c.Count > 0 && c.ValuePerUnit > 0
	case ValueUnitOther:
		o := d.OtherDetails
		return o != nil && o.Value > 0 && o.ValuePerUnit > 0
	}
	return false
}

// FinancialHours is time saved per person, or a flat number of hours.
type FinancialHours struct {
	AffectedPeople Number    `json:"affectedPeople,omitempty"`
	TimePerPerson  Number    `json:"timePerPerson,omitempty"`
	Hours          Number    `json:"hours,omitempty"`
	HourlyRate     Number    `json:"hourlyRate"`
	Timescale      Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FinancialHours) UnmarshalJSON(data []byte) error {
	type plain FinancialHours
	return decodeObject(data, (*plain)(d))
}

// FinancialCurrency is a direct monetary gain.
type FinancialCurrency struct {
	Amount    Number    `json:"amount"`
	Timescale Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FinancialCurrency) UnmarshalJSON(data []byte) error {
	type plain FinancialCurrency
	return decodeObject(data, (*plain)(d))
}

// FinancialPercentage is a share of a base value.
type FinancialPercentage struct {
	Percentage Number    `json:"percentage"`
	BaseValue  Number    `json:"baseValue"`
	Timescale  Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FinancialPercentage) UnmarshalJSON(data []byte) error {
	type plain FinancialPercentage
	return decodeObject(data, (*plain)(d))
}

// FinancialCount is a number of units with a value per unit.
type FinancialCount struct {
	Count        Number    `json:"count"`
	ValuePerUnit Number    `json:"valuePerUnit"`
	Timescale    Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FinancialCount) UnmarshalJSON(data []byte) error {
	type plain FinancialCount
	return decodeObject(data, (*plain)(d))
}

// FinancialOther is a count in a free-text unit.
type FinancialOther struct {
	Value        Number    `json:"value"`
	ValuePerUnit Number    `json:"valuePerUnit"`
	Unit         Text      `json:"unit,omitempty"`
	Timescale    Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FinancialOther) UnmarshalJSON(data []byte) error {
	type plain FinancialOther
	return decodeObject(data, (*plain)(d))
}

// -----------------------------------------------------------------------------
// Redistribution (before/after reallocation)
// -----------------------------------------------------------------------------

// RedistributionDetails is a before/after reallocation in one of five value units.
type RedistributionDetails struct {
	ValueUnit          ValueUnit                 `json:"valueUnit"`
	Timescale          Timescale                 `json:"timescale,omitempty"`
	AnnualizationYears Number                    `json:"annualizationYears,omitempty"`
	HoursDetails       *RedistributionHours      `json:"hoursDetails,omitempty"`
	CurrencyDetails    *RedistributionCurrency   `json:"currencyDetails,omitempty"`
	PercentageDetails  *RedistributionPercentage `json:"percentageDetails,omitempty"`
	CountDetails       *RedistributionCount      `json:"countDetails,omitempty"`
	OtherDetails       *RedistributionOther      `json:"otherDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RedistributionDetails) UnmarshalJSON(data []byte) error {
	type plain RedistributionDetails
	return decodeObject(data, (*plain)(d))
}

// Complete reports whether the group selected by ValueUnit has its required inputs.
func (d *RedistributionDetails) Complete() bool {
	if d == nil {
		return false
	}
	switch d.ValueUnit {
	case ValueUnitHours:
		h := d.HoursDetails
		return h != nil && h.HourlyRate > 0 &&
			(h.CurrentTimePerPerson > 0 || h.NewTimePerPerson > 0 || h.CurrentHours > 0 || h.NewHours > 0)
	case ValueUnitCurrency:
		c := d.CurrencyDetails
		return c != nil && (c.CurrentAmount != 0 || c.NewAmount != 0)
	case ValueUnitPercentage:
		p := d.PercentageDetails
		return p != nil && p.BaseValue > 0 && (p.CurrentPercentage != 0 || p.NewPercentage != 0)
	case ValueUnitCount:
		c := d.CountDetails
		return c != nil && c.ValuePerUnit > 0 && (c.CurrentCount > 0 || c.NewCount > 0)
	case ValueUnitOther:
		o := d.OtherDetails
		return o != nil && o.ValuePerUnit > 0 && (o.CurrentValue > 0 || o.NewValue > 0)
	}
	return false
}

// RedistributionHours compares working time before and after.
type RedistributionHours struct {
	CurrentAffectedPeople Number    `json:"currentAffectedPeople,omitempty"`
	CurrentTimePerPerson  Number    `json:"currentTimePerPerson,omitempty"`
	NewAffectedPeople     Number    `json:"newAffectedPeople,omitempty"`
	NewTimePerPerson      Number    `json:"newTimePerPerson,omitempty"`
	AffectedPeople        Number    `json:"affectedPeople,omitempty"`
	CurrentHours          Number    `json:"currentHours,omitempty"`
	NewHours              Number    `json:"newHours,omitempty"`
	HourlyRate            Number    `json:"hourlyRate"`
	Timescale             Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RedistributionHours) UnmarshalJSON(data []byte) error {
	type plain RedistributionHours
	return decodeObject(data, (*plain)(d))
}

// RedistributionCurrency compares a monetary amount before and after.
type RedistributionCurrency struct {
	CurrentAmount Number    `json:"currentAmount"`
	NewAmount     Number    `json:"newAmount"`
	Timescale     Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RedistributionCurrency) UnmarshalJSON(data []byte) error {
	type plain RedistributionCurrency
	return decodeObject(data, (*plain)(d))
}

// RedistributionPercentage compares two shares of the same base value.
type RedistributionPercentage struct {
	CurrentPercentage Number    `json:"currentPercentage"`
	NewPercentage     Number    `json:"newPercentage"`
	BaseValue         Number    `json:"baseValue"`
	Timescale         Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RedistributionPercentage) UnmarshalJSON(data []byte) error {
	type plain RedistributionPercentage
	return decodeObject(data, (*plain)(d))
}

// RedistributionCount compares unit counts before and after.
type RedistributionCount struct {
	CurrentCount Number    `json:"currentCount"`
	NewCount     Number    `json:"newCount"`
	ValuePerUnit Number    `json:"valuePerUnit"`
	Timescale    Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RedistributionCount) UnmarshalJSON(data []byte) error {
	type plain RedistributionCount
	return decodeObject(data, (*plain)(d))
}

// RedistributionOther compares free-text unit quantities before and after.
type RedistributionOther struct {
	CurrentValue Number    `json:"currentValue"`
	NewValue     Number    `json:"newValue"`
	ValuePerUnit Number    `json:"valuePerUnit"`
	Unit         Text      `json:"unit,omitempty"`
	Timescale    Timescale `json:"timescale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *RedistributionOther) UnmarshalJSON(data []byte) error {
	type plain RedistributionOther
	return decodeObject(data, (*plain)(d))
}
