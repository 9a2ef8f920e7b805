package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// StockService defines the behavior needed by StockHandler.
type StockService interface {
	Stocks() []domain.StockPosition
	AddStock(ctx context.Context, input usecase.AddStockInput) (domain.StockPosition, error)
	UpdateStockPrice(ctx context.Context, id string, price decimal.Decimal) error
	RemoveStock(ctx context.Context, id string) error
}

// PriceRefresher re-prices every position.
type PriceRefresher interface {
	Refresh(ctx context.Context) ([]domain.StockPosition, error)
}

// StockHandler handles portfolio HTTP requests.
type StockHandler struct {
	store     StockService
	refresher PriceRefresher
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(store StockService, refresher PriceRefresher) *StockHandler {
	return &StockHandler{store: store, refresher: refresher}
}

// Create opens a stock position.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddStockRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	stock, err := h.store.AddStock(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create stock", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.StockFromDomain(stock))
}

// List lists positions with their performance.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	stocks := h.store.Stocks()

	writeJSON(w, http.StatusOK, dto.ListStocksResponse{
		Stocks: dto.StocksFromDomain(stocks),
		Total:  len(stocks),
	})
}

// UpdatePrice sets a position's current price.
func (h *StockHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing stock ID", "")
		return
	}

	var req dto.UpdatePriceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.store.UpdateStockPrice(r.Context(), id, req.Price); err != nil {
		writeDomainError(w, "failed to update price", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a position.
func (h *StockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing stock ID", "")
		return
	}

	if err := h.store.RemoveStock(r.Context(), id); err != nil {
		writeDomainError(w, "failed to remove stock", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Refresh simulates a market move on every position.
func (h *StockHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.refresher.Refresh(r.Context())
	if err != nil {
		writeDomainError(w, "failed to refresh prices", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListStocksResponse{
		Stocks: dto.StocksFromDomain(stocks),
		Total:  len(stocks),
	})
}
