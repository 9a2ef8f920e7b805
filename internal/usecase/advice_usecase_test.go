package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase/mocks"
)

type staticSnapshot domain.Snapshot

func (s staticSnapshot) Snapshot() domain.Snapshot { return domain.Snapshot(s).Clone() }

func TestSummarize(t *testing.T) {
	d := domain.Dashboard{
		LocalCurrency:  "TWD",
		TotalAssets:    decimal.NewFromInt(1677000),
		TotalCash:      decimal.NewFromInt(324500),
		StockValue:     decimal.NewFromInt(1352500),
		MonthlyIncome:  decimal.NewFromInt(50000),
		MonthlyExpense: decimal.NewFromInt(1450),
		Holdings:       []string{"台積電", "Apple Inc.", "元大台灣50"},
	}

	want := strings.Join([]string{
		"總資產: 1677000 TWD",
		"現金: 324500 TWD",
		"股票市值: 1352500 TWD",
		"本月收入: 50000 TWD",
		"本月支出: 1450 TWD",
		"主要持股: 台積電, Apple Inc., 元大台灣50",
		"",
	}, "\n")

	assert.Equal(t, want, Summarize(d))
}

func TestAdviceUseCase_Advise(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockAdviceProvider(ctrl)

	snap := staticSnapshot{
		Accounts: []domain.Account{
			{ID: "acc_1", Balance: decimal.NewFromInt(150000), Currency: "TWD"},
			{ID: "acc_3", Balance: decimal.NewFromInt(5000), Currency: "USD"},
		},
		Transactions: []domain.Transaction{
			{ID: "tx_1", AccountID: "acc_1", Date: domain.NewDate(2023, time.October, 1), Amount: decimal.NewFromInt(50000), Type: domain.TransactionIncome},
		},
		Stocks: []domain.StockPosition{
			{ID: "stk_1", Name: "台積電", Shares: decimal.NewFromInt(1000), CurrentPrice: decimal.NewFromInt(780), Currency: "TWD"},
		},
	}

	var got string
	provider.EXPECT().Advise(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, summary string) string {
		got = summary
		return "分散投資"
	})

	uc := NewAdviceUseCase(snap, provider, domain.DefaultConverter())
	uc.now = func() time.Time { return time.Date(2024, time.October, 3, 0, 0, 0, 0, time.UTC) }

	advice := uc.Advise(context.Background())

	assert.Equal(t, "分散投資", advice.Text)
	assert.Equal(t, got, advice.Summary)
	assert.Contains(t, got, "總資產: 1080000 TWD")
	assert.Contains(t, got, "現金: 300000 TWD")
	assert.Contains(t, got, "本月收入: 50000 TWD")
	assert.Contains(t, got, "主要持股: 台積電")
}
