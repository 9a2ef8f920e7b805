package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StockPosition is a holding of shares in one symbol.
//
// CurrentPrice is updated independently of Shares and AverageCost.
type StockPosition struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Shares       decimal.Decimal `json:"shares"`
	AverageCost  decimal.Decimal `json:"averageCost"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Currency     string          `json:"currency"`
}

// Validate checks the fields required to open a position.
func (s *StockPosition) Validate() error {
	if err := ValidateSymbol(s.Symbol); err != nil {
		return err
	}

	if s.Shares.IsNegative() {
		return ErrInvalidShares
	}

	if err := ValidatePrice(s.AverageCost); err != nil {
		return err
	}

	if err := ValidatePrice(s.CurrentPrice); err != nil {
		return err
	}

	return ValidateCurrency(s.Currency)
}

// MarketValue returns shares x current price.
func (s *StockPosition) MarketValue() decimal.Decimal {
	return s.Shares.Mul(s.CurrentPrice)
}

// CostBasis returns shares x average cost.
func (s *StockPosition) CostBasis() decimal.Decimal {
	return s.Shares.Mul(s.AverageCost)
}

// IsLocal reports whether the position is quoted in the given local currency.
func (s *StockPosition) IsLocal(localCurrency string) bool {
	return strings.EqualFold(s.Currency, localCurrency)
}
