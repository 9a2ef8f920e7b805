package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/domain"
)

// AddAccountInput represents input for opening an account.
type AddAccountInput struct {
	Name          string
	BankName      string
	Balance       decimal.Decimal
	Currency      string
	AccountNumber string
}

// AddTransactionInput represents input for recording a transaction.
type AddTransactionInput struct {
	AccountID   string
	Date        domain.Date
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Category    string
	Description string
}

// AddStockInput represents input for opening a stock position.
type AddStockInput struct {
	Symbol       string
	Name         string
	Shares       decimal.Decimal
	AverageCost  decimal.Decimal
	CurrentPrice decimal.Decimal
	Currency     string
}

// Login replaces the current user with a new one and persists it
// immediately, whether or not the store has finished loading.
func (s *FinanceStore) Login(ctx context.Context, name, email string) (domain.User, error) {
	if err := domain.ValidateLogin(name, email); err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()

	user := domain.User{
		ID:    s.newIDLocked(func(string) bool { return false }),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}

	s.user = &user
	s.userTouched = true
	s.persistUserLocked(ctx)
	s.metrics.MutationApplied(OpLogin)

	s.unlockAndNotify(domain.EventTypeUserLoggedIn, user.ID)

	return user, nil
}

// Logout clears the current user and removes the persisted user blob.
func (s *FinanceStore) Logout(ctx context.Context) {
	s.mu.Lock()

	var ids []string
	if s.user != nil {
		ids = append(ids, s.user.ID)
	}

	s.user = nil
	s.userTouched = true
	s.persistUserLocked(ctx)
	s.metrics.MutationApplied(OpLogout)

	s.unlockAndNotify(domain.EventTypeUserLoggedOut, ids...)
}

// AddAccount appends a new account with a fresh ID.
func (s *FinanceStore) AddAccount(ctx context.Context, input AddAccountInput) (domain.Account, error) {
	account := domain.Account{
		Name:          strings.TrimSpace(input.Name),
		BankName:      input.BankName,
		Balance:       input.Balance,
		Currency:      strings.ToUpper(strings.TrimSpace(input.Currency)),
		AccountNumber: input.AccountNumber,
	}

	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return domain.Account{}, err
	}

	account.ID = s.newIDLocked(func(id string) bool {
		return slices.ContainsFunc(s.accounts, func(a domain.Account) bool { return a.ID == id })
	})
	s.accounts = append(s.accounts, account)
	s.persistAccountsLocked(ctx)
	s.metrics.MutationApplied(OpAddAccount)

	s.unlockAndNotify(domain.EventTypeAccountAdded, account.ID)

	return account, nil
}

// DeleteAccount removes the account with the given ID. Transactions that
// reference it are kept. Unknown IDs are a no-op.
func (s *FinanceStore) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}

	idx := slices.IndexFunc(s.accounts, func(a domain.Account) bool { return a.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	s.accounts = slices.Delete(s.accounts, idx, idx+1)
	s.persistAccountsLocked(ctx)
	s.metrics.MutationApplied(OpDeleteAccount)

	s.unlockAndNotify(domain.EventTypeAccountDeleted, id)

	return nil
}

// AddTransaction prepends a new transaction and applies its balance effect
// to the referenced account. A transaction whose account does not exist is
// still recorded; no balance changes.
func (s *FinanceStore) AddTransaction(ctx context.Context, input AddTransactionInput) (domain.Transaction, error) {
	tx := domain.Transaction{
		AccountID:   input.AccountID,
		Date:        input.Date,
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
	}

	if err := tx.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return domain.Transaction{}, err
	}

	tx.ID = s.newIDLocked(func(id string) bool {
		return slices.ContainsFunc(s.transactions, func(t domain.Transaction) bool { return t.ID == id })
	})
	s.transactions = slices.Insert(s.transactions, 0, tx)
	s.applyEffectLocked(tx.AccountID, tx.Effect())

	s.persistTransactionsLocked(ctx)
	s.persistAccountsLocked(ctx)
	s.metrics.MutationApplied(OpAddTransaction)

	s.unlockAndNotify(domain.EventTypeTransactionAdded, tx.ID)

	return tx, nil
}

// DeleteTransaction reverses the balance effect of the transaction using its
// stored type and amount, then removes it. Unknown IDs are a no-op.
func (s *FinanceStore) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}

	idx := slices.IndexFunc(s.transactions, func(t domain.Transaction) bool { return t.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	tx := s.transactions[idx]
	s.applyEffectLocked(tx.AccountID, tx.Reversal())
	s.transactions = slices.Delete(s.transactions, idx, idx+1)

	s.persistTransactionsLocked(ctx)
	s.persistAccountsLocked(ctx)
	s.metrics.MutationApplied(OpDeleteTransaction)

	s.unlockAndNotify(domain.EventTypeTransactionDeleted, id)

	return nil
}

// AddStock appends a new stock position with a fresh ID.
func (s *FinanceStore) AddStock(ctx context.Context, input AddStockInput) (domain.StockPosition, error) {
	stock := domain.StockPosition{
		Symbol:       strings.TrimSpace(input.Symbol),
		Name:         input.Name,
		Shares:       input.Shares,
		AverageCost:  input.AverageCost,
		CurrentPrice: input.CurrentPrice,
		Currency:     strings.ToUpper(strings.TrimSpace(input.Currency)),
	}

	if err := stock.Validate(); err != nil {
		return domain.StockPosition{}, err
	}

	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return domain.StockPosition{}, err
	}

	stock.ID = s.newIDLocked(func(id string) bool {
		return slices.ContainsFunc(s.stocks, func(st domain.StockPosition) bool { return st.ID == id })
	})
	s.stocks = append(s.stocks, stock)
	s.persistStocksLocked(ctx)
	s.metrics.MutationApplied(OpAddStock)

	s.unlockAndNotify(domain.EventTypeStockAdded, stock.ID)

	return stock, nil
}

// UpdateStockPrice replaces the current price of one position. Unknown IDs
// are a no-op.
func (s *FinanceStore) UpdateStockPrice(ctx context.Context, id string, price decimal.Decimal) error {
	if err := domain.ValidatePrice(price); err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}

	idx := slices.IndexFunc(s.stocks, func(st domain.StockPosition) bool { return st.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	s.stocks[idx].CurrentPrice = price
	s.persistStocksLocked(ctx)
	s.metrics.MutationApplied(OpUpdateStockPrice)

	s.unlockAndNotify(domain.EventTypeStockPriceUpdated, id)

	return nil
}

// RemoveStock removes the position with the given ID. Unknown IDs are a
// no-op.
func (s *FinanceStore) RemoveStock(ctx context.Context, id string) error {
	s.mu.Lock()
	if err := s.requireReadyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}

	idx := slices.IndexFunc(s.stocks, func(st domain.StockPosition) bool { return st.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	s.stocks = slices.Delete(s.stocks, idx, idx+1)
	s.persistStocksLocked(ctx)
	s.metrics.MutationApplied(OpRemoveStock)

	s.unlockAndNotify(domain.EventTypeStockRemoved, id)

	return nil
}

// applyEffectLocked adds effect to the balance of the account with the given
// ID, if there is one.
func (s *FinanceStore) applyEffectLocked(accountID string, effect decimal.Decimal) {
	idx := slices.IndexFunc(s.accounts, func(a domain.Account) bool { return a.ID == accountID })
	if idx < 0 {
		return
	}

	s.accounts[idx].Balance = s.accounts[idx].Apply(effect)
}
