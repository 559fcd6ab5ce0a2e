// Package types - Consolidated office and coverage views
package types

import "github.com/shopspring/decimal"

// ConsolidatedYear is the central-office profit-and-loss view for one year
type ConsolidatedYear struct {
	// Year is the forecast year, 1..Horizon
	Year int `json:"year"`

	// TotalFeeRevenue is the sum of management fees collected that year
	TotalFeeRevenue decimal.Decimal `json:"total_fee_revenue"`

	// CoreOfficeExpense is the loaded, compounded office payroll
	CoreOfficeExpense decimal.Decimal `json:"core_office_expense"`

	// NetOfficeIncome is fee revenue minus office expense
	NetOfficeIncome decimal.Decimal `json:"net_office_income"`

	// OfficeMargin is net income over fee revenue, undefined on zero fees
	OfficeMargin Ratio `json:"office_margin"`
}

// CoverageYear is the Obligated Group's approximate debt-service
// coverage for one year, computed over Smoothed rows only. The figure is
// a deliberately crude proxy, (net income + rent) / rent, not a real
// covenant calculation.
type CoverageYear struct {
	// Year is the forecast year, 1..Horizon
	Year int `json:"year"`

	// PooledNetIncome is the sum of net income over Smoothed rows
	PooledNetIncome decimal.Decimal `json:"pooled_net_income"`

	// PooledRent is the sum of base rent obligations over Smoothed rows
	PooledRent decimal.Decimal `json:"pooled_rent"`

	// CoverageProxy is (PooledNetIncome + PooledRent) / PooledRent,
	// undefined when the year has no Smoothed rows
	CoverageProxy Ratio `json:"coverage_proxy"`
}
