// Package api - Request and response types
package api

import (
	"github.com/shopspring/decimal"

	"charter-forecast/core/engine"
	"charter-forecast/core/types"
)

// ForecastRequest carries scenario overrides. Every field is optional;
// unset fields use the default scenario. Validation happens in the
// engine, so out-of-range values surface as PARAMETER_ERROR.
type ForecastRequest struct {
	RevenueGrowthRate      *float64 `json:"revenue_growth_rate,omitempty"`
	SalaryGrowthRate       *float64 `json:"salary_growth_rate,omitempty"`
	BenefitLoadRate        *float64 `json:"benefit_load_rate,omitempty"`
	ManagementFeeRate      *float64 `json:"management_fee_rate,omitempty"`
	SmoothingActive        *bool    `json:"smoothing_active,omitempty"`
	LaunchGrowthEntity     *bool    `json:"launch_growth_entity,omitempty"`
	GrowthJoinsPool        *bool    `json:"growth_joins_pool,omitempty"`
	GrowthTargetEnrollment *int     `json:"growth_target_enrollment,omitempty"`
	NumPsychologists       *int     `json:"num_psychologists,omitempty"`
	NumCoaches             *int     `json:"num_coaches,omitempty"`
	OfficeBaseSalary       *int64   `json:"office_base_salary,omitempty"`
}

// Assumptions resolves the request against the default scenario
func (r *ForecastRequest) Assumptions() types.Assumptions {
	a := types.Default()
	if r.RevenueGrowthRate != nil {
		a.RevenueGrowthRate = decimal.NewFromFloat(*r.RevenueGrowthRate)
	}
	if r.SalaryGrowthRate != nil {
		a.SalaryGrowthRate = decimal.NewFromFloat(*r.SalaryGrowthRate)
	}
	if r.BenefitLoadRate != nil {
		a.BenefitLoadRate = decimal.NewFromFloat(*r.BenefitLoadRate)
	}
	if r.ManagementFeeRate != nil {
		a.ManagementFeeRate = decimal.NewFromFloat(*r.ManagementFeeRate)
	}
	if r.SmoothingActive != nil {
		a.SmoothingActive = *r.SmoothingActive
	}
	if r.LaunchGrowthEntity != nil {
		a.LaunchGrowthEntity = *r.LaunchGrowthEntity
	}
	if r.GrowthJoinsPool != nil {
		a.GrowthJoinsPool = *r.GrowthJoinsPool
	}
	if r.GrowthTargetEnrollment != nil {
		a.GrowthTargetEnrollment = *r.GrowthTargetEnrollment
	}
	if r.NumPsychologists != nil {
		a.NumPsychologists = *r.NumPsychologists
	}
	if r.NumCoaches != nil {
		a.NumCoaches = *r.NumCoaches
	}
	if r.OfficeBaseSalary != nil {
		a.OfficeBaseSalary = decimal.NewFromInt(*r.OfficeBaseSalary)
	}
	return a
}

// ForecastResponse wraps a run result with execution metadata
type ForecastResponse struct {
	// Result is the complete forecast output
	Result *engine.Result `json:"result"`

	// DurationMS is the engine execution time in milliseconds
	DurationMS int64 `json:"duration_ms"`

	// Version is the service version
	Version string `json:"version"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`

	// Context identifies the offending field, year, or entity
	Context map[string]interface{} `json:"context,omitempty"`
}
