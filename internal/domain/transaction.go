package domain

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	// TransactionIncome credits the referenced account.
	TransactionIncome TransactionType = "income"

	// TransactionExpense debits the referenced account.
	TransactionExpense TransactionType = "expense"
)

// IsValid reports whether t is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// ParseTransactionType parses a type name.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}

	return t, nil
}

// UnmarshalJSON rejects unknown type names so a stored blob carrying one is
// treated as structurally incompatible.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Transaction is a single income or expense event against one account.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// Validate checks the transaction amount and type.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, t.Type)
	}

	return ValidateAmount(t.Amount)
}

// Effect returns the balance effect: +amount for income, -amount for expense.
func (t *Transaction) Effect() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}

	return t.Amount.Neg()
}

// Reversal returns the balance effect that undoes this transaction.
func (t *Transaction) Reversal() decimal.Decimal {
	return t.Effect().Neg()
}

// Categories are the suggested category names per transaction type.
var Categories = map[TransactionType][]string{
	TransactionExpense: {"飲食", "交通", "居住", "娛樂", "醫療", "教育", "其他支出"},
	TransactionIncome:  {"薪資", "獎金", "投資收益", "兼職", "其他收入"},
}

// CategoriesFor returns a copy of the suggested categories for t.
func CategoriesFor(t TransactionType) []string {
	return slices.Clone(Categories[t])
}
