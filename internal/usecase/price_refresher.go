package usecase

import (
	"context"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/domain"
)

var (
	priceSwing  = decimal.RequireFromString("0.04")
	priceOffset = decimal.RequireFromString("0.02")
)

// StockPriceUpdater is the store subset used by PriceRefresher.
type StockPriceUpdater interface {
	Stocks() []domain.StockPosition
	UpdateStockPrice(ctx context.Context, id string, price decimal.Decimal) error
}

// PriceRefresher simulates a market move by perturbing every current price
// by a uniform random factor in [-2%, +2%).
type PriceRefresher struct {
	store StockPriceUpdater
	rand  func() float64
}

// NewPriceRefresher creates a PriceRefresher. A nil source uses
// math/rand/v2.
func NewPriceRefresher(store StockPriceUpdater, source func() float64) *PriceRefresher {
	if source == nil {
		source = rand.Float64
	}

	return &PriceRefresher{store: store, rand: source}
}

// Refresh updates every position's current price and returns the positions
// as they were priced.
func (r *PriceRefresher) Refresh(ctx context.Context) ([]domain.StockPosition, error) {
	stocks := r.store.Stocks()

	for i := range stocks {
		price := NextPrice(stocks[i].CurrentPrice, r.rand())
		if err := r.store.UpdateStockPrice(ctx, stocks[i].ID, price); err != nil {
			return nil, err
		}

		stocks[i].CurrentPrice = price
	}

	return stocks, nil
}

// NextPrice returns price x (1 + u x 0.04 - 0.02) rounded to two places.
func NextPrice(price decimal.Decimal, u float64) decimal.Decimal {
	factor := decimal.NewFromInt(1).
		Add(decimal.NewFromFloat(u).Mul(priceSwing)).
		Sub(priceOffset)

	return price.Mul(factor).Round(2)
}
