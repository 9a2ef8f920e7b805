package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// ReconciliationUseCase compares recorded account balances with the
// transactions that reference them.
type ReconciliationUseCase struct {
	store SnapshotReader
	now   func() time.Time
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(store SnapshotReader) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		store: store,
		now:   time.Now,
	}
}

// ReconciliationResult describes one account. Balances are maintained
// incrementally, so OpeningBalance is implied: the recorded balance minus the
// net effect of the transactions that still reference the account.
type ReconciliationResult struct {
	AccountID        string
	AccountName      string
	Currency         string
	RecordedBalance  decimal.Decimal
	NetEffect        decimal.Decimal
	OpeningBalance   decimal.Decimal
	TransactionCount int
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	Accounts []ReconciliationResult
	// Orphaned lists transactions whose account no longer exists.
	Orphaned  []domain.Transaction
	CheckedAt time.Time
}

// Consistent reports whether every transaction references an account.
func (r *ReconciliationReport) Consistent() bool {
	return len(r.Orphaned) == 0
}

// GenerateReconciliationReport reconciles every account and collects
// orphaned transactions.
func (uc *ReconciliationUseCase) GenerateReconciliationReport() *ReconciliationReport {
	snap := uc.store.Snapshot()

	byAccount := make(map[string]*ReconciliationResult, len(snap.Accounts))
	report := &ReconciliationReport{
		Accounts:  make([]ReconciliationResult, len(snap.Accounts)),
		Orphaned:  make([]domain.Transaction, 0),
		CheckedAt: uc.now().UTC(),
	}

	for i, acc := range snap.Accounts {
		report.Accounts[i] = ReconciliationResult{
			AccountID:       acc.ID,
			AccountName:     acc.Name,
			Currency:        acc.Currency,
			RecordedBalance: acc.Balance,
			NetEffect:       decimal.Zero,
		}
		byAccount[acc.ID] = &report.Accounts[i]
	}

	for _, tx := range snap.Transactions {
		result, ok := byAccount[tx.AccountID]
		if !ok {
			report.Orphaned = append(report.Orphaned, tx)
			continue
		}

		result.NetEffect = result.NetEffect.Add(tx.Effect())
		result.TransactionCount++
	}

	for i := range report.Accounts {
		report.Accounts[i].OpeningBalance = report.Accounts[i].RecordedBalance.Sub(report.Accounts[i].NetEffect)
	}

	return report
}
