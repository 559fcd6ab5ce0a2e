// Package output - Markdown formatter
package output

import (
	"fmt"
	"io"
	"strconv"

	"charter-forecast/core/engine"
)

type markdownFormatter struct {
	opts Options
}

func (f *markdownFormatter) Format() Format {
	return FormatMarkdown
}

func (f *markdownFormatter) Render(w io.Writer, result *engine.Result) error {
	fmt.Fprintf(w, "# Charter Network 10-Year Forecast\n\n")

	fmt.Fprintf(w, "## Home Office Consolidated View\n\n")
	fmt.Fprintf(w, "| Year | Fee Revenue | Office Expense | Net Income | Margin |\n")
	fmt.Fprintf(w, "|------|-------------|----------------|------------|--------|\n")
	for _, y := range result.Consolidated {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s |\n",
			y.Year, money(y.TotalFeeRevenue), money(y.CoreOfficeExpense),
			money(y.NetOfficeIncome), percent(y.OfficeMargin))
	}

	fmt.Fprintf(w, "\n## Obligated Group Coverage\n\n")
	fmt.Fprintf(w, "Approximate planning proxy, (net income + rent) / rent; not a covenant calculation.\n\n")
	fmt.Fprintf(w, "| Year | Pooled Net Income | Pooled Rent | Coverage |\n")
	fmt.Fprintf(w, "|------|-------------------|-------------|----------|\n")
	for _, y := range result.Coverage {
		fmt.Fprintf(w, "| %d | %s | %s | %s |\n",
			y.Year, money(y.PooledNetIncome), money(y.PooledRent), ratio(y.CoverageProxy))
	}

	if f.opts.ShowSchoolDetail {
		title := "School Detail"
		if f.opts.SnapshotYear > 0 {
			title += " (Year " + strconv.Itoa(f.opts.SnapshotYear) + " Snapshot)"
		}
		fmt.Fprintf(w, "\n## %s\n\n", title)
		fmt.Fprintf(w, "| Year | School | Enrollment | Gross Revenue | Mgmt Fee | Shared Staff | Final Rent | Rent Note | Net Income | Margin |\n")
		fmt.Fprintf(w, "|------|--------|------------|---------------|----------|--------------|------------|-----------|------------|--------|\n")
		for _, r := range snapshotRows(result.Rows, f.opts.SnapshotYear) {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				r.Year, r.EntityName, r.Enrollment.Round(0).String(),
				money(r.GrossRevenue), money(r.ManagementFee),
				money(r.AllocatedSharedStaffCost), money(r.FinalRent),
				r.RentNote, money(r.NetIncome), percent(r.Margin))
		}
	}

	fmt.Fprintf(w, "\n_input hash %s_\n", result.Metadata.InputHash)
	return nil
}
