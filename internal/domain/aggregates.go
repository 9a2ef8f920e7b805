package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Converter applies fixed multipliers to bring foreign-currency amounts into
// the local currency. There is no live FX; a currency without a configured
// rate converts 1:1.
type Converter struct {
	LocalCurrency string
	Rates         map[string]decimal.Decimal
}

// DefaultConverter returns the TWD-based converter with USD at 30.
func DefaultConverter() Converter {
	return Converter{
		LocalCurrency: "TWD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(30),
		},
	}
}

// ToLocal converts amount held in currency to the local currency.
func (c Converter) ToLocal(amount decimal.Decimal, currency string) decimal.Decimal {
	if strings.EqualFold(currency, c.LocalCurrency) {
		return amount
	}

	rate, ok := c.Rates[strings.ToUpper(currency)]
	if !ok {
		return amount
	}

	return amount.Mul(rate)
}

// TotalCash sums account balances in the local currency.
func TotalCash(accounts []Account, c Converter) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		total = total.Add(c.ToLocal(accounts[i].Balance, accounts[i].Currency))
	}

	return total
}

// TotalStockValue sums shares x current price over all positions in the
// local currency.
func TotalStockValue(stocks []StockPosition, c Converter) decimal.Decimal {
	total := decimal.Zero
	for i := range stocks {
		total = total.Add(c.ToLocal(stocks[i].MarketValue(), stocks[i].Currency))
	}

	return total
}

// MonthTotals holds income and expense sums for one month.
type MonthTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (m MonthTotals) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

// CurrentMonthTotals sums transaction amounts whose date falls in the same
// month of year as now. The year is not compared: October
// 2023 and October 2024 both count as "this month" in October.
func CurrentMonthTotals(txs []Transaction, now time.Time) MonthTotals {
	totals := MonthTotals{Income: decimal.Zero, Expense: decimal.Zero}

	for i := range txs {
		if txs[i].Date.Month() != now.Month() {
			continue
		}

		switch txs[i].Type {
		case TransactionIncome:
			totals.Income = totals.Income.Add(txs[i].Amount)
		case TransactionExpense:
			totals.Expense = totals.Expense.Add(txs[i].Amount)
		}
	}

	return totals
}

// PositionPerformance is the unrealized result of a stock position in its
// own currency.
type PositionPerformance struct {
	MarketValue decimal.Decimal
	CostBasis   decimal.Decimal
	Profit      decimal.Decimal
	// Percent is invalid when the cost basis is zero.
	Percent decimal.NullDecimal
}

// Performance computes market value, cost basis, profit and profit percent.
func Performance(s StockPosition) PositionPerformance {
	p := PositionPerformance{
		MarketValue: s.MarketValue(),
		CostBasis:   s.CostBasis(),
	}
	p.Profit = p.MarketValue.Sub(p.CostBasis)

	if !p.CostBasis.IsZero() {
		p.Percent = decimal.NewNullDecimal(p.Profit.Div(p.CostBasis).Mul(hundred))
	}

	return p
}

// MonthlyReport is one bar of the monthly income/expense report.
type MonthlyReport struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (r MonthlyReport) Net() decimal.Decimal {
	return r.Income.Sub(r.Expense)
}

// MonthlySeries groups transactions by YYYY-MM, ascending by month.
func MonthlySeries(txs []Transaction) []MonthlyReport {
	byMonth := make(map[string]*MonthlyReport)

	for i := range txs {
		key := txs[i].Date.YearMonth()

		r, ok := byMonth[key]
		if !ok {
			r = &MonthlyReport{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = r
		}

		if txs[i].Type == TransactionIncome {
			r.Income = r.Income.Add(txs[i].Amount)
		} else {
			r.Expense = r.Expense.Add(txs[i].Amount)
		}
	}

	series := make([]MonthlyReport, 0, len(byMonth))
	for _, r := range byMonth {
		series = append(series, *r)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})

	return series
}

// FilterTransactions returns the transactions of type t, keeping order.
// An empty t returns every transaction.
func FilterTransactions(txs []Transaction, t TransactionType) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for i := range txs {
		if t == "" || txs[i].Type == t {
			out = append(out, txs[i])
		}
	}

	return out
}

// RecentTransactions returns at most n transactions from the head of the
// newest-first sequence.
func RecentTransactions(txs []Transaction, n int) []Transaction {
	if n < 0 {
		n = 0
	}

	if len(txs) < n {
		n = len(txs)
	}

	out := make([]Transaction, n)
	copy(out, txs[:n])

	return out
}

// Dashboard bundles the headline figures, all in the local currency.
type Dashboard struct {
	LocalCurrency  string
	TotalAssets    decimal.Decimal
	TotalCash      decimal.Decimal
	StockValue     decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	Holdings       []string
}

// BuildDashboard computes the dashboard figures from a snapshot.
func BuildDashboard(s Snapshot, c Converter, now time.Time) Dashboard {
	cash := TotalCash(s.Accounts, c)
	stocks := TotalStockValue(s.Stocks, c)
	month := CurrentMonthTotals(s.Transactions, now)

	holdings := make([]string, 0, len(s.Stocks))
	for i := range s.Stocks {
		holdings = append(holdings, s.Stocks[i].Name)
	}

	return Dashboard{
		LocalCurrency:  c.LocalCurrency,
		TotalAssets:    cash.Add(stocks),
		TotalCash:      cash,
		StockValue:     stocks,
		MonthlyIncome:  month.Income,
		MonthlyExpense: month.Expense,
		Holdings:       holdings,
	}
}
