// Package types - Per-year row structures
package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RentNote classifies how an entity's final rent was determined
type RentNote string

const (
	// RentSmoothed means the entity paid its enrollment share of the
	// pooled debt service
	RentSmoothed RentNote = "Smoothed"

	// RentFixed means a pooled entity paid its own base obligation
	// (smoothing inactive or pool empty)
	RentFixed RentNote = "Fixed"

	// RentLease means a non-pooled entity paid its own lease
	RentLease RentNote = "Lease"
)

// Ratio is a quotient with an explicit undefined marker. A ratio whose
// denominator was zero is Defined=false and serializes as JSON null;
// NaN never enters the output tables.
type Ratio struct {
	Value   decimal.Decimal
	Defined bool
}

// NewRatio divides num by den, returning an undefined Ratio when den is zero
func NewRatio(num, den decimal.Decimal) Ratio {
	if den.IsZero() {
		return Ratio{}
	}
	return Ratio{Value: num.Div(den), Defined: true}
}

// MarshalJSON serializes undefined ratios as null
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts null as the undefined marker
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Ratio{Value: v, Defined: true}
	return nil
}

// YearRow is one entity's figures for one year. The projector fills the
// projection fields; the allocation engine returns a new row with the
// allocation fields populated. Rows are never mutated in place.
type YearRow struct {
	// Year is the forecast year, 1..Horizon
	Year int `json:"year"`

	// EntityName identifies the school
	EntityName string `json:"entity_name"`

	// IsPooled is copied from the profile
	IsPooled bool `json:"is_pooled"`

	// Enrollment may be fractional during a ramp
	Enrollment decimal.Decimal `json:"enrollment"`

	// GrossRevenue is enrollment times compounded per-pupil revenue
	GrossRevenue decimal.Decimal `json:"gross_revenue"`

	// ManagementFee is the home-office fee on gross revenue
	ManagementFee decimal.Decimal `json:"management_fee"`

	// DirectInstructionCost is loaded instructional salary cost
	DirectInstructionCost decimal.Decimal `json:"direct_instruction_cost"`

	// FixedOpsCost is the inflated local fixed operating cost
	FixedOpsCost decimal.Decimal `json:"fixed_ops_cost"`

	// BaseRentObligation is the entity's own facility obligation
	BaseRentObligation decimal.Decimal `json:"base_rent_obligation"`

	// AllocatedSharedStaffCost is the entity's enrollment share of the
	// shared specialist pool (allocation stage)
	AllocatedSharedStaffCost decimal.Decimal `json:"allocated_shared_staff_cost"`

	// FinalRent is what the entity is actually charged (allocation stage)
	FinalRent decimal.Decimal `json:"final_rent"`

	// RentNote records how FinalRent was determined (allocation stage)
	RentNote RentNote `json:"rent_note,omitempty"`

	// TotalExpenses is fee + instruction + fixed ops + shared staff + rent
	TotalExpenses decimal.Decimal `json:"total_expenses"`

	// NetIncome is gross revenue minus total expenses
	NetIncome decimal.Decimal `json:"net_income"`

	// Margin is net income over gross revenue, undefined on zero revenue
	Margin Ratio `json:"margin"`
}
