// Package allocation distributes shared costs across the fleet and
// settles each entity's bottom line, one year at a time.
//
// Each year is allocated independently: the only inputs are that year's
// projected rows, the scenario assumptions, and the year index (which
// inflates the shared-staff cost). No state flows between years.
package allocation

import (
	"github.com/shopspring/decimal"

	"charter-forecast/core/types"
	"charter-forecast/internal/errors"
)

// AllocateYear returns a new row set for one year with the allocation
// fields populated: shared specialist cost split by enrollment share,
// final rent after Obligated-Group smoothing, total expenses, net
// income, and margin. The input rows are not modified.
func AllocateYear(rows []types.YearRow, a types.Assumptions, year int) ([]types.YearRow, error) {
	if len(rows) == 0 {
		return nil, errors.Allocation(year, "no entities to allocate")
	}
	for _, r := range rows {
		if r.Year != year {
			return nil, errors.Internal("allocation received a row from another year", nil).
				WithContext("year", year).
				WithContext("entity", r.EntityName)
		}
	}

	out := make([]types.YearRow, len(rows))
	copy(out, rows)

	if err := allocateSharedStaff(out, a, year); err != nil {
		return nil, err
	}
	if err := settleRent(out, a, year); err != nil {
		return nil, err
	}

	for i := range out {
		r := &out[i]
		r.TotalExpenses = r.ManagementFee.
			Add(r.DirectInstructionCost).
			Add(r.FixedOpsCost).
			Add(r.AllocatedSharedStaffCost).
			Add(r.FinalRent)
		r.NetIncome = r.GrossRevenue.Sub(r.TotalExpenses)
		r.Margin = types.NewRatio(r.NetIncome, r.GrossRevenue)
	}

	return out, nil
}

// allocateSharedStaff splits the year's total shared-specialist cost
// across all entities in proportion to enrollment share.
func allocateSharedStaff(rows []types.YearRow, a types.Assumptions, year int) error {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Enrollment)
	}
	if total.IsZero() {
		return errors.Allocation(year, "total enrollment is zero, shared staff allocation is undefined")
	}

	headcount := decimal.NewFromInt(int64(a.NumPsychologists + a.NumCoaches))
	salary := types.CompoundAt(types.SpecialistBaseSalary, a.SalaryGrowthRate, year)
	poolCost := headcount.Mul(salary).Mul(decimal.NewFromInt(1).Add(a.BenefitLoadRate))

	for i := range rows {
		rows[i].AllocatedSharedStaffCost = rows[i].Enrollment.Div(total).Mul(poolCost)
	}
	return nil
}

// settleRent applies Obligated-Group rent smoothing. Pooled entities
// share the pool's total debt service proportionally to enrollment when
// smoothing is active; otherwise everyone pays their own obligation.
// Smoothing redistributes pooled debt service, it never changes its sum.
func settleRent(rows []types.YearRow, a types.Assumptions, year int) error {
	pooledRent := decimal.Zero
	pooledEnrollment := decimal.Zero
	poolSize := 0
	for _, r := range rows {
		if r.IsPooled {
			poolSize++
			pooledRent = pooledRent.Add(r.BaseRentObligation)
			pooledEnrollment = pooledEnrollment.Add(r.Enrollment)
		}
	}

	smoothing := a.SmoothingActive && poolSize > 0
	if smoothing && pooledEnrollment.IsZero() {
		return errors.Allocation(year, "obligated group has zero enrollment, rent smoothing is undefined")
	}

	var ratePerPupil decimal.Decimal
	if smoothing {
		ratePerPupil = pooledRent.Div(pooledEnrollment)
	}

	for i := range rows {
		r := &rows[i]
		switch {
		case !r.IsPooled:
			r.FinalRent = r.BaseRentObligation
			r.RentNote = types.RentLease
		case smoothing:
			r.FinalRent = r.Enrollment.Mul(ratePerPupil)
			r.RentNote = types.RentSmoothed
		default:
			r.FinalRent = r.BaseRentObligation
			r.RentNote = types.RentFixed
		}
	}
	return nil
}
