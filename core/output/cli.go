// Package output - Terminal formatter
package output

import (
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"charter-forecast/core/engine"
	"charter-forecast/core/types"
	"charter-forecast/core/ui"
)

// Margin traffic-light thresholds: red below zero, yellow below 3%.
var marginCaution = decimal.NewFromFloat(0.03)

type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(out io.Writer, result *engine.Result) error {
	w := ui.NewWriter(out, f.opts.NoColor)

	w.Header("Home Office Consolidated View")
	f.renderOffice(w, result.Consolidated)

	w.Header("Obligated Group Coverage (approximate)")
	f.renderCoverage(w, result.Coverage)

	if f.opts.ShowSchoolDetail {
		title := "School Detail"
		if f.opts.SnapshotYear > 0 {
			title = "School Detail (Year " + strconv.Itoa(f.opts.SnapshotYear) + " Snapshot)"
		}
		w.Header(title)
		f.renderSchools(w, snapshotRows(result.Rows, f.opts.SnapshotYear))
	}

	w.Println("")
	w.Println("%s", w.Color(ui.Dim, "input hash "+result.Metadata.InputHash))
	return nil
}

func (f *cliFormatter) renderOffice(w *ui.Writer, years []types.ConsolidatedYear) {
	t := w.NewTable("Year", "Fee Revenue", "Office Expense", "Net Income", "Margin")
	for _, y := range years {
		t.AddRow(
			strconv.Itoa(y.Year),
			money(y.TotalFeeRevenue),
			money(y.CoreOfficeExpense),
			money(y.NetOfficeIncome),
			percent(y.OfficeMargin),
		)
	}
	t.Render()

	if n := len(years); n > 0 {
		last := years[n-1]
		w.Println("")
		w.Println("Projected year %d home office revenue: %s", last.Year, money(last.TotalFeeRevenue))
	}
}

func (f *cliFormatter) renderCoverage(w *ui.Writer, years []types.CoverageYear) {
	anySmoothed := false
	for _, y := range years {
		if y.CoverageProxy.Defined {
			anySmoothed = true
			break
		}
	}
	if !anySmoothed {
		w.Warning("Rent smoothing is off or no schools are in the Obligated Group.")
		return
	}

	t := w.NewTable("Year", "Pooled Net Income", "Pooled Rent", "Coverage (goal > 1.2x)")
	for _, y := range years {
		t.AddRow(
			strconv.Itoa(y.Year),
			money(y.PooledNetIncome),
			money(y.PooledRent),
			ratio(y.CoverageProxy),
		)
	}
	t.Render()
	w.Println("")
	w.Println("%s", w.Color(ui.Dim, "Coverage is the planning proxy (net income + rent) / rent, not a covenant calculation."))
}

func (f *cliFormatter) renderSchools(w *ui.Writer, rows []types.YearRow) {
	const marginCol = 7
	t := w.NewTable("Year", "School", "Enrollment", "Gross Revenue", "Mgmt Fee", "Final Rent", "Net Income", "Margin")
	for _, r := range rows {
		t.AddColoredRow(marginCol, marginColor(r.Margin),
			strconv.Itoa(r.Year),
			r.EntityName,
			r.Enrollment.Round(0).String(),
			money(r.GrossRevenue),
			money(r.ManagementFee),
			money(r.FinalRent)+" ("+string(r.RentNote)+")",
			money(r.NetIncome),
			percent(r.Margin),
		)
	}
	t.Render()
}

func marginColor(m types.Ratio) string {
	switch {
	case !m.Defined:
		return ui.Dim
	case m.Value.IsNegative():
		return ui.Red
	case m.Value.LessThan(marginCaution):
		return ui.Yellow
	default:
		return ui.Green
	}
}
