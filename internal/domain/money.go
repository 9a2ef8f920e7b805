package domain

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount with the currency's grapheme and separators,
// e.g. NT$150,000.00. Unknown currency codes fall back to "<amount> <code>".
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + strings.ToUpper(currency)
	}

	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()

	return money.New(minor, cur.Code).Display()
}
