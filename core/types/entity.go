// Package types - Entity profiles
package types

import "github.com/shopspring/decimal"

// EntityProfile is the static description of one school. Profiles are
// created once from the roster and never mutated; pool membership is
// decided here at construction, never re-derived from the display name.
type EntityProfile struct {
	// Name uniquely identifies the entity within a run
	Name string `json:"name"`

	// StartEnrollment is the year-1 headcount for non-ramp entities
	StartEnrollment decimal.Decimal `json:"start_enrollment"`

	// IsPooled marks membership in the shared-debt Obligated Group
	IsPooled bool `json:"is_pooled"`

	// IsRampEntity marks a school whose enrollment follows the ramp curve
	IsRampEntity bool `json:"is_ramp_entity"`

	// RampTargetEnrollment is the enrollment reached in year 5 (ramp only)
	RampTargetEnrollment int `json:"ramp_target_enrollment,omitempty"`

	// BasePerPupilRevenue is the year-1 per-pupil revenue
	BasePerPupilRevenue decimal.Decimal `json:"base_per_pupil_revenue"`

	// BaseTeacherCostPerPupil is the year-1 per-pupil instructional salary
	BaseTeacherCostPerPupil decimal.Decimal `json:"base_teacher_cost_per_pupil"`

	// BaseFixedCost is the year-1 local fixed operating cost
	BaseFixedCost decimal.Decimal `json:"base_fixed_cost"`

	// BaseRentObligation is the annual facility debt service or lease,
	// held flat across the horizon
	BaseRentObligation decimal.Decimal `json:"base_rent_obligation"`
}
