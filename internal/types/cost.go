package types

// CostUnit discriminates the four cost entry shapes.
type CostUnit string

// Cost units
const (
	CostUnitHours   CostUnit = "hours"
	CostUnitFixed   CostUnit = "fixed"
	CostUnitMonthly CostUnit = "monthly"
	CostUnitYearly  CostUnit = "yearly"
)

// UnmarshalJSON implements json.Unmarshaler.
func (u *CostUnit) UnmarshalJSON(data []byte) error {
	*u = CostUnit(enumFromJSON(data))
	return nil
}

// Valid reports whether the unit is one of the known cost units.
func (u CostUnit) Valid() bool {
	switch u {
	case CostUnitHours, CostUnitFixed, CostUnitMonthly, CostUnitYearly:
		return true
	}
	return false
}

// CostEntry is one cost line item. Only the group selected by CostUnit is read.
type CostEntry struct {
	CostType       Text         `json:"costType,omitempty"`
	Description    Text         `json:"description,omitempty"`
	CostUnit       CostUnit     `json:"costUnit"`
	HoursDetails   *HoursCost   `json:"hoursDetails,omitempty"`
	FixedDetails   *FixedCost   `json:"fixedDetails,omitempty"`
	MonthlyDetails *MonthlyCost `json:"monthlyDetails,omitempty"`
	YearlyDetails  *YearlyCost  `json:"yearlyDetails,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *CostEntry) UnmarshalJSON(data []byte) error {
	type plain CostEntry
	return decodeObject(data, (*plain)(e))
}

// IsLabelled reports whether the entry says what the cost is for.
func (e *CostEntry) IsLabelled() bool {
	return !e.CostType.IsBlank() || !e.Description.IsBlank()
}

// HoursCost is work time billed by the hour.
type HoursCost struct {
	Hours      Number `json:"hours"`
	HourlyRate Number `json:"hourlyRate"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *HoursCost) UnmarshalJSON(data []byte) error {
	type plain HoursCost
	return decodeObject(data, (*plain)(d))
}

// FixedCost is a one-off amount.
type FixedCost struct {
	FixedAmount Number `json:"fixedAmount"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *FixedCost) UnmarshalJSON(data []byte) error {
	type plain FixedCost
	return decodeObject(data, (*plain)(d))
}

// MonthlyCost is a recurring monthly amount over a number of months.
type MonthlyCost struct {
	MonthlyAmount   Number `json:"monthlyAmount"`
	MonthlyDuration Number `json:"monthlyDuration"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *MonthlyCost) UnmarshalJSON(data []byte) error {
	type plain MonthlyCost
	return decodeObject(data, (*plain)(d))
}

// YearlyCost is a recurring yearly amount over a number of years.
type YearlyCost struct {
	YearlyAmount   Number `json:"yearlyAmount"`
	YearlyDuration Number `json:"yearlyDuration"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *YearlyCost) UnmarshalJSON(data []byte) error {
	type plain YearlyCost
	return decodeObject(data, (*plain)(d))
}
