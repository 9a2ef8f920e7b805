package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// StateResponse is the whole store state as seen by a client.
type StateResponse struct {
	User         *domain.User           `json:"user"`
	Accounts     []domain.Account       `json:"accounts"`
	Transactions []domain.Transaction   `json:"transactions"`
	Stocks       []domain.StockPosition `json:"stocks"`
	Loading      bool                   `json:"loading"`
}

// StateFromSnapshot converts a snapshot to a response.
func StateFromSnapshot(s domain.Snapshot) *StateResponse {
	return &StateResponse{
		User:         s.User,
		Accounts:     nonNil(s.Accounts),
		Transactions: nonNil(s.Transactions),
		Stocks:       nonNil(s.Stocks),
		Loading:      s.Loading,
	}
}

// SessionResponse reports the current user, nil when logged out.
type SessionResponse struct {
	User *domain.User `json:"user"`
}

// ListAccountsResponse represents a list of accounts.
type ListAccountsResponse struct {
	Accounts []domain.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// ListTransactionsResponse represents a list of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
}

// StockResponse is a stock position with its unrealized performance.
type StockResponse struct {
	domain.StockPosition
	MarketValue   decimal.Decimal  `json:"marketValue"`
	CostBasis     decimal.Decimal  `json:"costBasis"`
	Profit        decimal.Decimal  `json:"profit"`
	ProfitPercent *decimal.Decimal `json:"profitPercent"`
}

// StockFromDomain converts a position to a response.
func StockFromDomain(s domain.StockPosition) StockResponse {
	perf := domain.Performance(s)
	resp := StockResponse{
		StockPosition: s,
		MarketValue:   perf.MarketValue,
		CostBasis:     perf.CostBasis,
		Profit:        perf.Profit,
	}
	if perf.Percent.Valid {
		pct := perf.Percent.Decimal.Round(2)
		resp.ProfitPercent = &pct
	}

	return resp
}

// StocksFromDomain converts positions to responses.
func StocksFromDomain(stocks []domain.StockPosition) []StockResponse {
	result := make([]StockResponse, len(stocks))
	for i, s := range stocks {
		result[i] = StockFromDomain(s)
	}
	return result
}

// ListStocksResponse represents the portfolio.
type ListStocksResponse struct {
	Stocks []StockResponse `json:"stocks"`
	Total  int             `json:"total"`
}

// DashboardResponse holds the headline figures in the local currency.
type DashboardResponse struct {
	LocalCurrency      string               `json:"localCurrency"`
	TotalAssets        decimal.Decimal      `json:"totalAssets"`
	TotalCash          decimal.Decimal      `json:"totalCash"`
	StockValue         decimal.Decimal      `json:"stockValue"`
	MonthlyIncome      decimal.Decimal      `json:"monthlyIncome"`
	MonthlyExpense     decimal.Decimal      `json:"monthlyExpense"`
	Formatted          FormattedTotals      `json:"formatted"`
	Holdings           []string             `json:"holdings"`
	RecentTransactions []domain.Transaction `json:"recentTransactions"`
}

// FormattedTotals are the dashboard figures rendered for display.
type FormattedTotals struct {
	TotalAssets    string `json:"totalAssets"`
	TotalCash      string `json:"totalCash"`
	StockValue     string `json:"stockValue"`
	MonthlyIncome  string `json:"monthlyIncome"`
	MonthlyExpense string `json:"monthlyExpense"`
}

// DashboardFromDomain converts a dashboard to a response.
func DashboardFromDomain(d domain.Dashboard, recent []domain.Transaction) *DashboardResponse {
	format := func(v decimal.Decimal) string {
		return domain.FormatMoney(v, d.LocalCurrency)
	}

	return &DashboardResponse{
		LocalCurrency:  d.LocalCurrency,
		TotalAssets:    d.TotalAssets,
		TotalCash:      d.TotalCash,
		StockValue:     d.StockValue,
		MonthlyIncome:  d.MonthlyIncome,
		MonthlyExpense: d.MonthlyExpense,
		Formatted: FormattedTotals{
			TotalAssets:    format(d.TotalAssets),
			TotalCash:      format(d.TotalCash),
			StockValue:     format(d.StockValue),
			MonthlyIncome:  format(d.MonthlyIncome),
			MonthlyExpense: format(d.MonthlyExpense),
		},
		Holdings:           nonNil(d.Holdings),
		RecentTransactions: nonNil(recent),
	}
}

// CategoriesResponse lists the suggested category names per transaction type.
type CategoriesResponse struct {
	Categories map[domain.TransactionType][]string `json:"categories"`
}

// MonthlyReportItem is one month of the income/expense report.
type MonthlyReportItem struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlyReportResponse is the monthly report, oldest month first.
type MonthlyReportResponse struct {
	Months []MonthlyReportItem `json:"months"`
}

// MonthlyReportFromDomain converts the series to a response.
func MonthlyReportFromDomain(series []domain.MonthlyReport) *MonthlyReportResponse {
	items := make([]MonthlyReportItem, len(series))
	for i, r := range series {
		items[i] = MonthlyReportItem{
			Month:   r.Month,
			Income:  r.Income,
			Expense: r.Expense,
			Net:     r.Net(),
		}
	}

	return &MonthlyReportResponse{Months: items}
}

// ReconciliationItem describes one account in a reconciliation report.
type ReconciliationItem struct {
	AccountID        string          `json:"accountId"`
	AccountName      string          `json:"accountName"`
	Currency         string          `json:"currency"`
	RecordedBalance  decimal.Decimal `json:"recordedBalance"`
	NetEffect        decimal.Decimal `json:"netEffect"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	TransactionCount int             `json:"transactionCount"`
}

// ReconciliationResponse represents a reconciliation report.
type ReconciliationResponse struct {
	Consistent bool                 `json:"consistent"`
	Accounts   []ReconciliationItem `json:"accounts"`
	Orphaned   []domain.Transaction `json:"orphaned"`
	CheckedAt  time.Time            `json:"checkedAt"`
}

// ReconciliationFromDomain converts a report to a response.
func ReconciliationFromDomain(r *usecase.ReconciliationReport) *ReconciliationResponse {
	items := make([]ReconciliationItem, len(r.Accounts))
	for i, a := range r.Accounts {
		items[i] = ReconciliationItem{
			AccountID:        a.AccountID,
			AccountName:      a.AccountName,
			Currency:         a.Currency,
			RecordedBalance:  a.RecordedBalance,
			NetEffect:        a.NetEffect,
			OpeningBalance:   a.OpeningBalance,
			TransactionCount: a.TransactionCount,
		}
	}

	return &ReconciliationResponse{
		Consistent: r.Consistent(),
		Accounts:   items,
		Orphaned:   nonNil(r.Orphaned),
		CheckedAt:  r.CheckedAt,
	}
}

// AdviceResponse carries the advice and the summary it was based on.
type AdviceResponse struct {
	Summary string `json:"summary"`
	Advice  string `json:"advice"`
}

// StatusResponse reports the store lifecycle state.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// nonNil keeps empty lists rendering as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
