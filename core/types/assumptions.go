// Package types defines the forecast domain model: scenario assumptions,
// entity profiles, and the per-year row structures the engine produces.
package types

import (
	"github.com/shopspring/decimal"

	"charter-forecast/internal/errors"
)

// Horizon is the forecast length in years. Every table the engine
// produces covers years 1..Horizon.
const Horizon = 10

// RampStartEnrollment is the year-1 headcount of a ramp entity.
const RampStartEnrollment = 100

// RampYears is the span of the linear enrollment ramp. A ramp entity
// reaches its target in year RampYears and holds flat after.
const RampYears = 5

// Fixed model constants. These are declared fixed by the scenario
// controls and are not overridable from a scenario file.
var (
	// GeneralInflationRate inflates fixed operating costs (2% per year).
	GeneralInflationRate = decimal.NewFromFloat(0.02)

	// SpecialistBaseSalary is the year-1 salary of one shared specialist.
	SpecialistBaseSalary = decimal.NewFromInt(95000)
)

// Assumptions is the immutable scenario parameter set. One value is
// constructed per run and passed explicitly into every engine stage;
// nothing reads scenario state ambiently.
type Assumptions struct {
	// RevenueGrowthRate is the annual per-pupil revenue growth (COLA)
	RevenueGrowthRate decimal.Decimal `json:"revenue_growth_rate"`

	// SalaryGrowthRate is the annual salary step increase
	SalaryGrowthRate decimal.Decimal `json:"salary_growth_rate"`

	// BenefitLoadRate is the benefits load applied on top of salaries
	BenefitLoadRate decimal.Decimal `json:"benefit_load_rate"`

	// ManagementFeeRate is the fee the home office charges on gross revenue
	ManagementFeeRate decimal.Decimal `json:"management_fee_rate"`

	// SmoothingActive enables Obligated-Group rent smoothing
	SmoothingActive bool `json:"smoothing_active"`

	// LaunchGrowthEntity adds the ramp-up growth school to the fleet
	LaunchGrowthEntity bool `json:"launch_growth_entity"`

	// GrowthJoinsPool places the growth school inside the Obligated Group
	GrowthJoinsPool bool `json:"growth_joins_pool"`

	// GrowthTargetEnrollment is the ramp target reached in year 5
	GrowthTargetEnrollment int `json:"growth_target_enrollment"`

	// NumPsychologists is the shared psychologist headcount
	NumPsychologists int `json:"num_psychologists"`

	// NumCoaches is the shared instructional coach headcount
	NumCoaches int `json:"num_coaches"`

	// OfficeBaseSalary is the year-1 central-office payroll
	OfficeBaseSalary decimal.Decimal `json:"office_base_salary"`
}

// Default returns the baseline scenario: the seven legacy schools,
// smoothing on, no growth entity, default economic rates.
func Default() Assumptions {
	return Assumptions{
		RevenueGrowthRate:      decimal.NewFromFloat(0.025),
		SalaryGrowthRate:       decimal.NewFromFloat(0.03),
		BenefitLoadRate:        decimal.NewFromFloat(0.25),
		ManagementFeeRate:      decimal.NewFromFloat(0.15),
		SmoothingActive:        true,
		LaunchGrowthEntity:     false,
		GrowthJoinsPool:        false,
		GrowthTargetEnrollment: 600,
		NumPsychologists:       2,
		NumCoaches:             1,
		OfficeBaseSalary:       decimal.NewFromInt(1200000),
	}
}

// Validate checks every parameter against its declared range. The first
// violation is returned as a PARAMETER_ERROR naming the field.
func (a Assumptions) Validate() error {
	if err := inRange("revenue_growth_rate", a.RevenueGrowthRate, "0", "0.05"); err != nil {
		return err
	}
	if err := inRange("salary_growth_rate", a.SalaryGrowthRate, "0", "0.05"); err != nil {
		return err
	}
	if err := inRange("benefit_load_rate", a.BenefitLoadRate, "0.20", "0.40"); err != nil {
		return err
	}
	if err := inRange("management_fee_rate", a.ManagementFeeRate, "0.10", "0.20"); err != nil {
		return err
	}
	if a.LaunchGrowthEntity {
		if a.GrowthTargetEnrollment < 100 || a.GrowthTargetEnrollment > 2000 {
			return errors.Parameter("growth_target_enrollment", "must be in [100, 2000]").
				WithContext("value", a.GrowthTargetEnrollment)
		}
	}
	if a.NumPsychologists < 0 || a.NumPsychologists > 10 {
		return errors.Parameter("num_psychologists", "must be in [0, 10]").
			WithContext("value", a.NumPsychologists)
	}
	if a.NumCoaches < 0 || a.NumCoaches > 10 {
		return errors.Parameter("num_coaches", "must be in [0, 10]").
			WithContext("value", a.NumCoaches)
	}
	if err := inRange("office_base_salary", a.OfficeBaseSalary, "500000", "5000000"); err != nil {
		return err
	}
	return nil
}

func inRange(field string, v decimal.Decimal, lo, hi string) error {
	low := decimal.RequireFromString(lo)
	high := decimal.RequireFromString(hi)
	if v.LessThan(low) || v.GreaterThan(high) {
		return errors.Parameter(field, "must be in ["+lo+", "+hi+"]").
			WithContext("value", v.String())
	}
	return nil
}

// CompoundAt applies the standard compounding rule base * (1+rate)^(year-1).
// Year 1 returns the base unchanged.
func CompoundAt(base, rate decimal.Decimal, year int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(year - 1)))
	return base.Mul(factor)
}
