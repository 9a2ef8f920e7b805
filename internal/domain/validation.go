package domain

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MinAccountNameLength = 1
	MaxSymbolLength      = 32
)

// ValidateAccountName validates account name
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinAccountNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateCurrency validates currency code against the ISO 4217 table.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if currency == "" || money.GetCurrency(currency) == nil {
		return fmt.Errorf("%w: %q is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount validates a transaction amount. Zero is allowed; the sign of
// a transaction is carried by its type, never by its amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateSymbol validates a ticker symbol such as 2330.TW or AAPL.
func ValidateSymbol(symbol string) error {
	symbol = strings.TrimSpace(symbol)

	if symbol == "" {
		return ErrEmptySymbol
	}

	if len(symbol) > MaxSymbolLength {
		return fmt.Errorf("%w: symbol exceeds %d characters", ErrEmptySymbol, MaxSymbolLength)
	}

	return nil
}

// ValidatePrice validates a per-share price or cost.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}

	return nil
}
