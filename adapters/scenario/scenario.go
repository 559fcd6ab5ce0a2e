// Package scenario loads forecast scenario files.
//
// A scenario file is an HCL document with three optional blocks:
// assumptions, growth, and shared_staff. Attributes that are not set
// fall back to the default scenario; unknown attributes are errors. The
// loaded parameter set still goes through Assumptions.Validate, so a
// scenario file cannot push a control outside its declared range.
package scenario

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"charter-forecast/core/types"
	"charter-forecast/internal/errors"
)

type scenarioFile struct {
	Assumptions *assumptionsBlock `hcl:"assumptions,block"`
	Growth      *growthBlock      `hcl:"growth,block"`
	SharedStaff *sharedStaffBlock `hcl:"shared_staff,block"`
}

type assumptionsBlock struct {
	RevenueGrowthRate *float64 `hcl:"revenue_growth_rate,optional"`
	SalaryGrowthRate  *float64 `hcl:"salary_growth_rate,optional"`
	BenefitLoadRate   *float64 `hcl:"benefit_load_rate,optional"`
	ManagementFeeRate *float64 `hcl:"management_fee_rate,optional"`
	SmoothingActive   *bool    `hcl:"smoothing_active,optional"`
	OfficeBaseSalary  *int64   `hcl:"office_base_salary,optional"`
}

type growthBlock struct {
	Launch           *bool `hcl:"launch,optional"`
	JoinsPool        *bool `hcl:"joins_pool,optional"`
	TargetEnrollment *int  `hcl:"target_enrollment,optional"`
}

type sharedStaffBlock struct {
	Psychologists *int `hcl:"psychologists,optional"`
	Coaches       *int `hcl:"coaches,optional"`
}

// Load reads a scenario file and returns the default assumptions with
// the file's overrides applied.
func Load(path string) (types.Assumptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Assumptions{}, errors.Scenario("failed to read scenario file", err).
			WithContext("path", path)
	}
	return Parse(data, path)
}

// Parse decodes scenario HCL source. The filename is used in diagnostics.
func Parse(src []byte, filename string) (types.Assumptions, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return types.Assumptions{}, errors.Scenario("failed to parse scenario file", diags).
			WithContext("path", filename)
	}

	var doc scenarioFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return types.Assumptions{}, errors.Scenario("invalid scenario file", diags).
			WithContext("path", filename)
	}

	a := types.Default()
	apply(&a, &doc)
	return a, nil
}

func apply(a *types.Assumptions, doc *scenarioFile) {
	if b := doc.Assumptions; b != nil {
		if b.RevenueGrowthRate != nil {
			a.RevenueGrowthRate = decimal.NewFromFloat(*b.RevenueGrowthRate)
		}
		if b.SalaryGrowthRate != nil {
			a.SalaryGrowthRate = decimal.NewFromFloat(*b.SalaryGrowthRate)
		}
		if b.BenefitLoadRate != nil {
			a.BenefitLoadRate = decimal.NewFromFloat(*b.BenefitLoadRate)
		}
		if b.ManagementFeeRate != nil {
			a.ManagementFeeRate = decimal.NewFromFloat(*b.ManagementFeeRate)
		}
		if b.SmoothingActive != nil {
			a.SmoothingActive = *b.SmoothingActive
		}
		if b.OfficeBaseSalary != nil {
			a.OfficeBaseSalary = decimal.NewFromInt(*b.OfficeBaseSalary)
		}
	}
	if b := doc.Growth; b != nil {
		if b.Launch != nil {
			a.LaunchGrowthEntity = *b.Launch
		}
		if b.JoinsPool != nil {
			a.GrowthJoinsPool = *b.JoinsPool
		}
		if b.TargetEnrollment != nil {
			a.GrowthTargetEnrollment = *b.TargetEnrollment
		}
	}
	if b := doc.SharedStaff; b != nil {
		if b.Psychologists != nil {
			a.NumPsychologists = *b.Psychologists
		}
		if b.Coaches != nil {
			a.NumCoaches = *b.Coaches
		}
	}
}

// DefaultDocument is a commented scenario file describing every control
// and its valid range. `forecast scenario init` writes it to disk.
const DefaultDocument = `# Charter network forecast scenario.
# Every attribute is optional; unset attributes use the default scenario.

assumptions {
  revenue_growth_rate = 0.025 # annual COLA, 0 to 0.05
  salary_growth_rate  = 0.03  # annual salary step, 0 to 0.05
  benefit_load_rate   = 0.25  # benefits load on salaries, 0.20 to 0.40
  management_fee_rate = 0.15  # home office fee on gross revenue, 0.10 to 0.20
  smoothing_active    = true  # Obligated Group rent smoothing
  office_base_salary  = 1200000 # year-1 office payroll, 500000 to 5000000
}

growth {
  launch            = false # add the ramp-up growth school
  joins_pool        = false # growth school joins the Obligated Group
  target_enrollment = 600   # enrollment reached in year 5, 100 to 2000
}

shared_staff {
  psychologists = 2 # shared headcount, 0 to 10
  coaches       = 1 # shared headcount, 0 to 10
}
`

// WriteDefault writes the commented default scenario file
func WriteDefault(path string) error {
	return os.WriteFile(path, []byte(DefaultDocument), 0644)
}
