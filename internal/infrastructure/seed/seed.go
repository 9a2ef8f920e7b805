// Package seed provides the default data set loaded when nothing has been
// persisted yet.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// Provider returns the built-in demo data set.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() Provider {
	return Provider{}
}

// Seed returns a fresh copy of the default accounts, transactions and stocks.
func (Provider) Seed() domain.Snapshot {
	return domain.Snapshot{
		Accounts: []domain.Account{
			{
				ID:            "acc_1",
				Name:          "主要薪轉戶",
				BankName:      "中國信託",
				Balance:       decimal.NewFromInt(150000),
				Currency:      "TWD",
				AccountNumber: "****-1234",
			},
			{
				ID:            "acc_2",
				Name:          "日常消費戶",
				BankName:      "國泰世華",
				Balance:       decimal.NewFromInt(24500),
				Currency:      "TWD",
				AccountNumber: "****-5678",
			},
			{
				ID:            "acc_3",
				Name:          "美股投資戶",
				BankName:      "Firstrade",
				Balance:       decimal.NewFromInt(5000),
				Currency:      "USD",
				AccountNumber: "****-9999",
			},
		},
		Transactions: []domain.Transaction{
			{
				ID:          "tx_1",
				AccountID:   "acc_1",
				Date:        domain.NewDate(2023, time.October, 1),
				Amount:      decimal.NewFromInt(50000),
				Type:        domain.TransactionIncome,
				Category:    "薪資",
				Description: "十月份薪資",
			},
			{
				ID:          "tx_2",
				AccountID:   "acc_2",
				Date:        domain.NewDate(2023, time.October, 2),
				Amount:      decimal.NewFromInt(250),
				Type:        domain.TransactionExpense,
				Category:    "飲食",
				Description: "午餐",
			},
			{
				ID:          "tx_3",
				AccountID:   "acc_2",
				Date:        domain.NewDate(2023, time.October, 5),
				Amount:      decimal.NewFromInt(1200),
				Type:        domain.TransactionExpense,
				Category:    "交通",
				Description: "高鐵票",
			},
		},
		Stocks: []domain.StockPosition{
			{
				ID:           "stk_1",
				Symbol:       "2330.TW",
				Name:         "台積電",
				Shares:       decimal.NewFromInt(1000),
				AverageCost:  decimal.NewFromInt(550),
				CurrentPrice: decimal.NewFromInt(780),
				Currency:     "TWD",
			},
			{
				ID:           "stk_2",
				Symbol:       "AAPL",
				Name:         "Apple Inc.",
				Shares:       decimal.NewFromInt(50),
				AverageCost:  decimal.NewFromInt(150),
				CurrentPrice: decimal.NewFromInt(175),
				Currency:     "USD",
			},
			{
				ID:           "stk_3",
				Symbol:       "0050.TW",
				Name:         "元大台灣50",
				Shares:       decimal.NewFromInt(2000),
				AverageCost:  decimal.NewFromInt(120),
				CurrentPrice: decimal.NewFromInt(155),
				Currency:     "TWD",
			},
		},
	}
}
