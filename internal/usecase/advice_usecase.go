package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// SnapshotReader exposes a consistent copy of the store state.
type SnapshotReader interface {
	Snapshot() domain.Snapshot
}

// AdviceUseCase assembles a financial summary and asks the advice provider
// for a recommendation.
type AdviceUseCase struct {
	store     SnapshotReader
	provider  AdviceProvider
	converter domain.Converter
	now       func() time.Time
}

// NewAdviceUseCase creates a new AdviceUseCase.
func NewAdviceUseCase(store SnapshotReader, provider AdviceProvider, converter domain.Converter) *AdviceUseCase {
	return &AdviceUseCase{
		store:     store,
		provider:  provider,
		converter: converter,
		now:       time.Now,
	}
}

// Advice is the provider's answer together with the summary it was given.
type Advice struct {
	Summary string
	Text    string
}

// Advise builds the summary from current state and returns the provider's
// advice. It never fails; provider problems surface as fallback text.
func (uc *AdviceUseCase) Advise(ctx context.Context) Advice {
	dash := domain.BuildDashboard(uc.store.Snapshot(), uc.converter, uc.now())
	summary := Summarize(dash)

	return Advice{
		Summary: summary,
		Text:    uc.provider.Advise(ctx, summary),
	}
}

// Summarize renders the dashboard figures as the plain-text summary sent to
// the advice provider.
func Summarize(d domain.Dashboard) string {
	var b strings.Builder

	line := func(label string, v fmt.Stringer) {
		fmt.Fprintf(&b, "%s: %s %s\n", label, v, d.LocalCurrency)
	}

	line("總資產", d.TotalAssets)
	line("現金", d.TotalCash)
	line("股票市值", d.StockValue)
	line("本月收入", d.MonthlyIncome)
	line("本月支出", d.MonthlyExpense)
	fmt.Fprintf(&b, "主要持股: %s\n", strings.Join(d.Holdings, ", "))

	return b.String()
}
