// Package projection produces one school's standalone 10-year forecast.
// Projection is a pure function of the profile and the assumptions; it
// knows nothing about other entities. Cross-entity effects (shared staff,
// rent smoothing) are applied later by the allocation engine.
package projection

import (
	"github.com/shopspring/decimal"

	"charter-forecast/core/types"
	"charter-forecast/internal/errors"
)

// Project returns one YearRow per year, year-ascending. The projection
// fields are populated; allocation fields are left zero for the
// allocation engine to fill.
func Project(profile types.EntityProfile, a types.Assumptions, years int) ([]types.YearRow, error) {
	if years < 1 {
		return nil, errors.Newf(errors.TypeParameter, "horizon must be at least 1 year, got %d", years)
	}
	if profile.IsRampEntity && years < types.RampYears {
		return nil, errors.Newf(errors.TypeParameter,
			"horizon %d shorter than the %d-year ramp for %s", years, types.RampYears, profile.Name)
	}

	benefitFactor := decimal.NewFromInt(1).Add(a.BenefitLoadRate)

	rows := make([]types.YearRow, 0, years)
	for year := 1; year <= years; year++ {
		enrollment := enrollmentAt(profile, year)

		perPupilRevenue := types.CompoundAt(profile.BasePerPupilRevenue, a.RevenueGrowthRate, year)
		teacherCost := types.CompoundAt(profile.BaseTeacherCostPerPupil, a.SalaryGrowthRate, year)
		fixedOps := types.CompoundAt(profile.BaseFixedCost, types.GeneralInflationRate, year)

		grossRevenue := enrollment.Mul(perPupilRevenue)

		rows = append(rows, types.YearRow{
			Year:                  year,
			EntityName:            profile.Name,
			IsPooled:              profile.IsPooled,
			Enrollment:            enrollment,
			GrossRevenue:          grossRevenue,
			ManagementFee:         grossRevenue.Mul(a.ManagementFeeRate),
			DirectInstructionCost: enrollment.Mul(teacherCost).Mul(benefitFactor),
			FixedOpsCost:          fixedOps,
			// Debt service does not inflate.
			BaseRentObligation: profile.BaseRentObligation,
		})
	}

	return rows, nil
}

// enrollmentAt evaluates the growth rule: a linear ramp from the fixed
// start to the target across years 1..RampYears, flat at the target
// after; non-ramp entities hold their start enrollment.
func enrollmentAt(profile types.EntityProfile, year int) decimal.Decimal {
	if !profile.IsRampEntity {
		return profile.StartEnrollment
	}

	target := decimal.NewFromInt(int64(profile.RampTargetEnrollment))
	if year >= types.RampYears {
		return target
	}

	start := decimal.NewFromInt(types.RampStartEnrollment)
	step := target.Sub(start).
		Mul(decimal.NewFromInt(int64(year - 1))).
		Div(decimal.NewFromInt(types.RampYears - 1))
	return start.Add(step)
}
