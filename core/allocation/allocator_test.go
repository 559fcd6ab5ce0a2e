package allocation

import (
	"testing"

	"github.com/shopspring/decimal"

	"charter-forecast/core/projection"
	"charter-forecast/core/roster"
	"charter-forecast/core/types"
	"charter-forecast/internal/errors"
)

// relTolerance is the conservation tolerance: 1e-6 relative.
var relTolerance = decimal.NewFromFloat(1e-6)

func withinRel(t *testing.T, got, want decimal.Decimal) {
	t.Helper()
	diff := got.Sub(want).Abs()
	scale := decimal.Max(got.Abs(), want.Abs())
	if scale.IsZero() {
		if !diff.IsZero() {
			t.Fatalf("want %s, got %s", want, got)
		}
		return
	}
	if diff.Div(scale).GreaterThan(relTolerance) {
		t.Fatalf("want %s, got %s (relative error %s)", want, got, diff.Div(scale))
	}
}

// projectYear runs the projector over the default fleet and returns the
// rows for one year, fleet order.
func projectYear(t *testing.T, a types.Assumptions, year int) []types.YearRow {
	t.Helper()
	var out []types.YearRow
	for _, p := range roster.Build(a) {
		rows, err := projection.Project(p, a, types.Horizon)
		if err != nil {
			t.Fatalf("project %s: %v", p.Name, err)
		}
		out = append(out, rows[year-1])
	}
	return out
}

func TestSharedStaffAllocationConservesTotal(t *testing.T) {
	a := types.Default()
	for year := 1; year <= types.Horizon; year++ {
		rows, err := AllocateYear(projectYear(t, a, year), a, year)
		if err != nil {
			t.Fatalf("year %d: %v", year, err)
		}

		allocated := decimal.Zero
		for _, r := range rows {
			allocated = allocated.Add(r.AllocatedSharedStaffCost)
		}

		// 3 specialists at 95,000, compounded at salary growth, loaded at 25%.
		headcount := decimal.NewFromInt(int64(a.NumPsychologists + a.NumCoaches))
		want := headcount.
			Mul(types.CompoundAt(types.SpecialistBaseSalary, a.SalaryGrowthRate, year)).
			Mul(decimal.NewFromInt(1).Add(a.BenefitLoadRate))
		withinRel(t, allocated, want)
	}
}

func TestPooledRentConservedUnderSmoothing(t *testing.T) {
	a := types.Default()
	for year := 1; year <= types.Horizon; year++ {
		input := projectYear(t, a, year)
		rows, err := AllocateYear(input, a, year)
		if err != nil {
			t.Fatalf("year %d: %v", year, err)
		}

		baseSum := decimal.Zero
		finalSum := decimal.Zero
		for _, r := range rows {
			if r.IsPooled {
				baseSum = baseSum.Add(r.BaseRentObligation)
				finalSum = finalSum.Add(r.FinalRent)
			}
		}
		// Smoothing redistributes pooled debt service, never changes its sum.
		withinRel(t, finalSum, baseSum)
	}
}

func TestScenarioExampleSmoothedRent(t *testing.T) {
	// The default fleet in year 1: five pooled schools with base rent
	// 550,000 and enrollments 500/480/520/450/600, pool total 2,750,000
	// over 2,550 pupils.
	a := types.Default()
	rows, err := AllocateYear(projectYear(t, a, 1), a, 1)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	var schoolA *types.YearRow
	pooledFinal := decimal.Zero
	for i, r := range rows {
		if r.EntityName == "School A" {
			schoolA = &rows[i]
		}
		if r.IsPooled {
			pooledFinal = pooledFinal.Add(r.FinalRent)
		}
	}
	if schoolA == nil {
		t.Fatal("School A missing from allocation output")
	}

	if schoolA.RentNote != types.RentSmoothed {
		t.Fatalf("expected Smoothed rent note, got %s", schoolA.RentNote)
	}
	// 500 pupils * (2,750,000 / 2,550) per pupil.
	withinRel(t, schoolA.FinalRent, decimal.NewFromFloat(539215.6862745098))
	withinRel(t, pooledFinal, decimal.NewFromInt(2750000))
}

func TestSmoothingOffEveryoneKeepsOwnObligation(t *testing.T) {
	a := types.Default()
	a.SmoothingActive = false
	rows, err := AllocateYear(projectYear(t, a, 1), a, 1)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	for _, r := range rows {
		if !r.FinalRent.Equal(r.BaseRentObligation) {
			t.Errorf("%s: final rent %s differs from base obligation %s with smoothing off",
				r.EntityName, r.FinalRent, r.BaseRentObligation)
		}
		want := types.RentLease
		if r.IsPooled {
			want = types.RentFixed
		}
		if r.RentNote != want {
			t.Errorf("%s: expected rent note %s, got %s", r.EntityName, want, r.RentNote)
		}
	}
}

func TestLeasedSchoolsNeverSmoothed(t *testing.T) {
	a := types.Default()
	rows, err := AllocateYear(projectYear(t, a, 1), a, 1)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	for _, r := range rows {
		if r.IsPooled {
			continue
		}
		if r.RentNote != types.RentLease {
			t.Errorf("%s: leased school got rent note %s", r.EntityName, r.RentNote)
		}
		if !r.FinalRent.Equal(r.BaseRentObligation) {
			t.Errorf("%s: leased school rent changed from %s to %s",
				r.EntityName, r.BaseRentObligation, r.FinalRent)
		}
	}
}

func TestNetIncomeAndMargin(t *testing.T) {
	a := types.Default()
	rows, err := AllocateYear(projectYear(t, a, 1), a, 1)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	for _, r := range rows {
		wantExpenses := r.ManagementFee.
			Add(r.DirectInstructionCost).
			Add(r.FixedOpsCost).
			Add(r.AllocatedSharedStaffCost).
			Add(r.FinalRent)
		if !r.TotalExpenses.Equal(wantExpenses) {
			t.Errorf("%s: total expenses %s, want %s", r.EntityName, r.TotalExpenses, wantExpenses)
		}
		if !r.NetIncome.Equal(r.GrossRevenue.Sub(wantExpenses)) {
			t.Errorf("%s: net income mismatch", r.EntityName)
		}
		if !r.Margin.Defined {
			t.Errorf("%s: margin undefined despite positive revenue", r.EntityName)
		}
	}
}

func TestZeroMarginRowIsUndefinedNotNaN(t *testing.T) {
	rows := []types.YearRow{{
		Year:       1,
		EntityName: "Empty School",
		Enrollment: decimal.NewFromInt(10),
		// Zero gross revenue: margin must be an explicit undefined marker.
	}}
	out, err := AllocateYear(rows, types.Default(), 1)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if out[0].Margin.Defined {
		t.Error("margin over zero revenue must be undefined")
	}
}

func TestZeroTotalEnrollmentFailsExplicitly(t *testing.T) {
	rows := []types.YearRow{{
		Year:       1,
		EntityName: "Empty School",
		Enrollment: decimal.Zero,
	}}
	_, err := AllocateYear(rows, types.Default(), 1)
	if err == nil {
		t.Fatal("expected a degenerate-allocation error, got nil")
	}
	if !errors.IsType(err, errors.TypeAllocation) {
		t.Fatalf("expected %s, got %v", errors.TypeAllocation, err)
	}
	if e := err.(*errors.Error); e.Context["year"] != 1 {
		t.Errorf("error must identify the offending year, got %v", e.Context)
	}
}

func TestZeroPooledEnrollmentFailsUnderSmoothing(t *testing.T) {
	rows := []types.YearRow{
		{
			Year:               3,
			EntityName:         "Empty Pooled",
			IsPooled:           true,
			Enrollment:         decimal.Zero,
			BaseRentObligation: decimal.NewFromInt(550000),
		},
		{
			Year:       3,
			EntityName: "Leased",
			Enrollment: decimal.NewFromInt(400),
		},
	}
	_, err := AllocateYear(rows, types.Default(), 3)
	if err == nil {
		t.Fatal("expected a degenerate-allocation error for an empty pool under smoothing")
	}
	if !errors.IsType(err, errors.TypeAllocation) {
		t.Fatalf("expected %s, got %v", errors.TypeAllocation, err)
	}
}

func TestAllocateYearDoesNotMutateInput(t *testing.T) {
	a := types.Default()
	input := projectYear(t, a, 1)
	before := make([]types.YearRow, len(input))
	copy(before, input)

	if _, err := AllocateYear(input, a, 1); err != nil {
		t.Fatalf("allocate: %v", err)
	}
	for i := range input {
		if input[i].RentNote != before[i].RentNote ||
			!input[i].FinalRent.Equal(before[i].FinalRent) ||
			!input[i].AllocatedSharedStaffCost.Equal(before[i].AllocatedSharedStaffCost) {
			t.Fatalf("input row %d was mutated", i)
		}
	}
}

func TestAllocateYearRejectsForeignYearRows(t *testing.T) {
	rows := projectYear(t, types.Default(), 2)
	_, err := AllocateYear(rows, types.Default(), 1)
	if err == nil {
		t.Fatal("expected an error when allocating year-2 rows as year 1")
	}
}

func TestGrowthSchoolJoinsThePool(t *testing.T) {
	a := types.Default()
	a.LaunchGrowthEntity = true
	a.GrowthJoinsPool = true
	a.GrowthTargetEnrollment = 800

	rows, err := AllocateYear(projectYear(t, a, 1), a, 1)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	var growth *types.YearRow
	for i, r := range rows {
		if r.EntityName == roster.GrowthEntityName {
			growth = &rows[i]
		}
	}
	if growth == nil {
		t.Fatal("growth school missing")
	}
	if growth.RentNote != types.RentSmoothed {
		t.Errorf("growth school inside the pool must be smoothed, got %s", growth.RentNote)
	}

	// Pool now carries the growth school's 600,000 debt over 2,650 pupils.
	baseSum := decimal.Zero
	finalSum := decimal.Zero
	for _, r := range rows {
		if r.IsPooled {
			baseSum = baseSum.Add(r.BaseRentObligation)
			finalSum = finalSum.Add(r.FinalRent)
		}
	}
	withinRel(t, baseSum, decimal.NewFromInt(3350000))
	withinRel(t, finalSum, baseSum)
}
