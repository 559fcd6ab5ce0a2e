// Package consolidation aggregates the fleet forecast into the home
// office's profit-and-loss view.
package consolidation

import (
	"sort"

	"github.com/shopspring/decimal"

	"charter-forecast/core/types"
)

// Consolidate returns one ConsolidatedYear per year present in the
// augmented rows, year-ascending: fee revenue collected from the fleet
// against the office's own loaded, compounded payroll.
func Consolidate(rows []types.YearRow, a types.Assumptions) []types.ConsolidatedYear {
	fees := make(map[int]decimal.Decimal)
	for _, r := range rows {
		fees[r.Year] = fees[r.Year].Add(r.ManagementFee)
	}

	years := make([]int, 0, len(fees))
	for y := range fees {
		years = append(years, y)
	}
	sort.Ints(years)

	benefitFactor := decimal.NewFromInt(1).Add(a.BenefitLoadRate)

	out := make([]types.ConsolidatedYear, 0, len(years))
	for _, y := range years {
		expense := types.CompoundAt(a.OfficeBaseSalary, a.SalaryGrowthRate, y).Mul(benefitFactor)
		net := fees[y].Sub(expense)
		out = append(out, types.ConsolidatedYear{
			Year:              y,
			TotalFeeRevenue:   fees[y],
			CoreOfficeExpense: expense,
			NetOfficeIncome:   net,
			OfficeMargin:      types.NewRatio(net, fees[y]),
		})
	}
	return out
}
