// Package coverage computes the Obligated Group's approximate
// debt-service coverage trajectory.
//
// The figure is (net income + rent) / rent summed over Smoothed rows,
// the crude proxy the planning model has always used. It is not a real
// covenant calculation and is labeled approximate wherever it is shown.
package coverage

import (
	"sort"

	"github.com/shopspring/decimal"

	"charter-forecast/core/types"
)

// Proxy returns one CoverageYear per year present in the augmented
// rows, year-ascending. Years with no Smoothed rows carry an undefined
// coverage marker.
func Proxy(rows []types.YearRow) []types.CoverageYear {
	type sums struct {
		netIncome decimal.Decimal
		rent      decimal.Decimal
	}

	byYear := make(map[int]sums)
	yearSet := make(map[int]bool)
	for _, r := range rows {
		yearSet[r.Year] = true
		if r.RentNote != types.RentSmoothed {
			continue
		}
		s := byYear[r.Year]
		s.netIncome = s.netIncome.Add(r.NetIncome)
		s.rent = s.rent.Add(r.BaseRentObligation)
		byYear[r.Year] = s
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]types.CoverageYear, 0, len(years))
	for _, y := range years {
		s := byYear[y]
		out = append(out, types.CoverageYear{
			Year:            y,
			PooledNetIncome: s.netIncome,
			PooledRent:      s.rent,
			CoverageProxy:   types.NewRatio(s.netIncome.Add(s.rent), s.rent),
		})
	}
	return out
}
