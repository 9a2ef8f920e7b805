package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// LoginRequest represents a request to start a session.
type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddAccountRequest represents a request to open an account.
type AddAccountRequest struct {
	Name          string          `json:"name"`
	BankName      string          `json:"bankName"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"accountNumber"`
}

// ToUseCaseInput converts to use case input.
func (r *AddAccountRequest) ToUseCaseInput() usecase.AddAccountInput {
	return usecase.AddAccountInput{
		Name:          r.Name,
		BankName:      r.BankName,
		Balance:       r.Balance,
		Currency:      r.Currency,
		AccountNumber: r.AccountNumber,
	}
}

// AddTransactionRequest represents a request to record a transaction.
type AddTransactionRequest struct {
	AccountID   string                 `json:"accountId"`
	Date        domain.Date            `json:"date"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *AddTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		AccountID:   r.AccountID,
		Date:        r.Date,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
		Description: r.Description,
	}
}

// AddStockRequest represents a request to open a stock position. A missing
// currentPrice starts at the average cost.
type AddStockRequest struct {
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Shares       decimal.Decimal  `json:"shares"`
	AverageCost  decimal.Decimal  `json:"averageCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	Currency     string           `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *AddStockRequest) ToUseCaseInput() usecase.AddStockInput {
	price := r.AverageCost
	if r.CurrentPrice != nil {
		price = *r.CurrentPrice
	}

	return usecase.AddStockInput{
		Symbol:       r.Symbol,
		Name:         r.Name,
		Shares:       r.Shares,
		AverageCost:  r.AverageCost,
		CurrentPrice: price,
		Currency:     r.Currency,
	}
}

// UpdatePriceRequest represents a request to set a position's current price.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}
