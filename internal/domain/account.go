package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account represents a bank account holding a running balance.
//
// Balance is maintained incrementally by the store as transactions are added
// and deleted; it is never recomputed from the transaction list.
type Account struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"accountNumber"`
}

// Validate checks the fields required to open an account.
func (a *Account) Validate() error {
	if err := ValidateAccountName(a.Name); err != nil {
		return err
	}

	return ValidateCurrency(a.Currency)
}

// ApplyDebit returns new balance after debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns new balance after credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// Apply returns the balance after applying a signed balance effect.
func (a *Account) Apply(effect decimal.Decimal) decimal.Decimal {
	if effect.IsNegative() {
		return a.ApplyDebit(effect.Neg())
	}

	return a.ApplyCredit(effect)
}

// IsLocal reports whether the account is held in the given local currency.
func (a *Account) IsLocal(localCurrency string) bool {
	return strings.EqualFold(a.Currency, localCurrency)
}
