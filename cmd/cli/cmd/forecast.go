// Package cmd - forecast command
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"charter-forecast/adapters/scenario"
	"charter-forecast/core/engine"
	"charter-forecast/core/output"
	"charter-forecast/core/types"
	"charter-forecast/internal/logging"
)

var (
	scenarioPath string
	outputFormat string
	snapshotYear int
	noColor      bool
	noDetail     bool

	flagSmoothing     bool
	flagGrowth        bool
	flagJoinsPool     bool
	flagGrowthTarget  int
	flagFeeRate       float64
	flagRevenueGrowth float64
	flagSalaryGrowth  float64
	flagBenefitLoad   float64
	flagOfficeSalary  int64
	flagPsychologists int
	flagCoaches       int
)

// forecastCmd represents the forecast command
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Run the 10-year forecast for a scenario",
	Long: `Run the full forecast pipeline and render the results.

The scenario is resolved in three layers: the default scenario, then an
optional HCL scenario file, then any flags set on the command line.

Examples:
  charter-forecast forecast
  charter-forecast forecast --scenario expansion.hcl
  charter-forecast forecast --growth --growth-target 1200 --year 5
  charter-forecast forecast --no-smoothing --format markdown`,
	RunE: runForecast,
}

func init() {
	f := forecastCmd.Flags()
	f.StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (HCL)")
	f.StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	f.IntVarP(&snapshotYear, "year", "y", 0, "restrict the school table to one year (0 = all)")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	f.BoolVar(&noDetail, "no-detail", false, "hide the per-school table")

	f.BoolVar(&flagSmoothing, "smoothing", true, "Obligated Group rent smoothing")
	f.BoolVar(&flagGrowth, "growth", false, "launch the ramp-up growth school")
	f.BoolVar(&flagJoinsPool, "growth-joins-pool", false, "growth school joins the Obligated Group")
	f.IntVar(&flagGrowthTarget, "growth-target", 600, "growth school enrollment target in year 5")
	f.Float64Var(&flagFeeRate, "fee", 0.15, "management fee rate")
	f.Float64Var(&flagRevenueGrowth, "revenue-growth", 0.025, "annual per-pupil revenue growth")
	f.Float64Var(&flagSalaryGrowth, "salary-growth", 0.03, "annual salary step increase")
	f.Float64Var(&flagBenefitLoad, "benefit-load", 0.25, "benefits load on salaries")
	f.Int64Var(&flagOfficeSalary, "office-salary", 1200000, "year-1 central office payroll")
	f.IntVar(&flagPsychologists, "psychologists", 2, "shared psychologist headcount")
	f.IntVar(&flagCoaches, "coaches", 1, "shared coach headcount")
}

func runForecast(cmd *cobra.Command, args []string) error {
	assumptions, err := resolveAssumptions(cmd)
	if err != nil {
		return err
	}

	result, err := engine.New().Run(assumptions)
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(appConfig.Output.DefaultFormat)
	}
	year := snapshotYear
	if year == 0 {
		year = appConfig.Output.SnapshotYear
	}

	formatter, err := output.New(format, output.Options{
		SnapshotYear:     year,
		ShowSchoolDetail: !noDetail && appConfig.Output.ShowSchoolDetail,
		NoColor:          noColor || appConfig.Output.NoColor,
	})
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, result)
}

// resolveAssumptions layers the scenario file and flag overrides over
// the default scenario. A flag only overrides when it was set.
func resolveAssumptions(cmd *cobra.Command) (types.Assumptions, error) {
	a := types.Default()

	path := scenarioPath
	if path == "" {
		if _, err := os.Stat(appConfig.Scenario.DefaultPath); err == nil {
			path = appConfig.Scenario.DefaultPath
		}
	}
	if path != "" {
		loaded, err := scenario.Load(path)
		if err != nil {
			return types.Assumptions{}, err
		}
		logging.Debug("loaded scenario file", zap.String("path", path))
		a = loaded
	}

	f := cmd.Flags()
	if f.Changed("smoothing") {
		a.SmoothingActive = flagSmoothing
	}
	if f.Changed("growth") {
		a.LaunchGrowthEntity = flagGrowth
	}
	if f.Changed("growth-joins-pool") {
		a.GrowthJoinsPool = flagJoinsPool
	}
	if f.Changed("growth-target") {
		a.GrowthTargetEnrollment = flagGrowthTarget
	}
	if f.Changed("fee") {
		a.ManagementFeeRate = decimal.NewFromFloat(flagFeeRate)
	}
	if f.Changed("revenue-growth") {
		a.RevenueGrowthRate = decimal.NewFromFloat(flagRevenueGrowth)
	}
	if f.Changed("salary-growth") {
		a.SalaryGrowthRate = decimal.NewFromFloat(flagSalaryGrowth)
	}
	if f.Changed("benefit-load") {
		a.BenefitLoadRate = decimal.NewFromFloat(flagBenefitLoad)
	}
	if f.Changed("office-salary") {
		a.OfficeBaseSalary = decimal.NewFromInt(flagOfficeSalary)
	}
	if f.Changed("psychologists") {
		a.NumPsychologists = flagPsychologists
	}
	if f.Changed("coaches") {
		a.NumCoaches = flagCoaches
	}

	return a, nil
}

// scenarioCmd manages scenario files
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage scenario files",
}

var scenarioInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfig.Scenario.DefaultPath
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing file: %s", path)
		}
		if err := scenario.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioInitCmd)
}
