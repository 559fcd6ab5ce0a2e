package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"charter-forecast/internal/errors"
)

func TestDefaultAssumptionsValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default assumptions failed validation: %v", err)
	}
}

func TestValidateRejectsOutOfRangeParameters(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*Assumptions)
	}{
		{
			name:   "revenue growth above cap",
			field:  "revenue_growth_rate",
			mutate: func(a *Assumptions) { a.RevenueGrowthRate = decimal.NewFromFloat(0.06) },
		},
		{
			name:   "negative salary growth",
			field:  "salary_growth_rate",
			mutate: func(a *Assumptions) { a.SalaryGrowthRate = decimal.NewFromFloat(-0.01) },
		},
		{
			name:   "benefit load below floor",
			field:  "benefit_load_rate",
			mutate: func(a *Assumptions) { a.BenefitLoadRate = decimal.NewFromFloat(0.10) },
		},
		{
			name:   "fee rate above cap",
			field:  "management_fee_rate",
			mutate: func(a *Assumptions) { a.ManagementFeeRate = decimal.NewFromFloat(0.25) },
		},
		{
			name:  "growth target too large",
			field: "growth_target_enrollment",
			mutate: func(a *Assumptions) {
				a.LaunchGrowthEntity = true
				a.GrowthTargetEnrollment = 2500
			},
		},
		{
			name:   "too many psychologists",
			field:  "num_psychologists",
			mutate: func(a *Assumptions) { a.NumPsychologists = 11 },
		},
		{
			name:   "negative coaches",
			field:  "num_coaches",
			mutate: func(a *Assumptions) { a.NumCoaches = -1 },
		},
		{
			name:   "office salary below floor",
			field:  "office_base_salary",
			mutate: func(a *Assumptions) { a.OfficeBaseSalary = decimal.NewFromInt(100000) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Default()
			tt.mutate(&a)
			err := a.Validate()
			if err == nil {
				t.Fatal("expected a parameter error, got nil")
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("expected *errors.Error, got %T", err)
			}
			if e.Type != errors.TypeParameter {
				t.Errorf("expected %s, got %s", errors.TypeParameter, e.Type)
			}
			if got := e.Context["field"]; got != tt.field {
				t.Errorf("expected field %q in context, got %v", tt.field, got)
			}
		})
	}
}

func TestGrowthTargetIgnoredWhenGrowthNotLaunched(t *testing.T) {
	a := Default()
	a.LaunchGrowthEntity = false
	a.GrowthTargetEnrollment = 0
	if err := a.Validate(); err != nil {
		t.Fatalf("growth target should not be validated when growth is off: %v", err)
	}
}

func TestCompoundAtYearOneReturnsBase(t *testing.T) {
	base := decimal.NewFromInt(14000)
	rate := decimal.NewFromFloat(0.025)
	if got := CompoundAt(base, rate, 1); !got.Equal(base) {
		t.Errorf("year 1 must use the base unchanged, got %s", got)
	}
}

func TestCompoundAtIsMonotonic(t *testing.T) {
	base := decimal.NewFromInt(14000)
	rate := decimal.NewFromFloat(0.025)
	prev := CompoundAt(base, rate, 1)
	for year := 2; year <= Horizon; year++ {
		cur := CompoundAt(base, rate, year)
		if cur.LessThan(prev) {
			t.Fatalf("compounded value decreased from %s to %s at year %d", prev, cur, year)
		}
		prev = cur
	}
}

func TestRatioUndefinedMarshalsAsNull(t *testing.T) {
	r := NewRatio(decimal.NewFromInt(5), decimal.Zero)
	if r.Defined {
		t.Fatal("division by zero must produce an undefined ratio")
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("undefined ratio must serialize as null, got %s", data)
	}
}

func TestRatioRoundTrip(t *testing.T) {
	r := NewRatio(decimal.NewFromInt(1), decimal.NewFromInt(4))
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Ratio
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Defined || !back.Value.Equal(decimal.NewFromFloat(0.25)) {
		t.Errorf("round trip changed the ratio: %+v", back)
	}
}
