package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	Transactions() []domain.Transaction
	AddTransaction(ctx context.Context, input usecase.AddTransactionInput) (domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	store TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(store TransactionService) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// Create records a transaction and applies its balance effect.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tx, err := h.store.AddTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create transaction", err)
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// List lists transactions newest first, optionally filtered by ?type=.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.TransactionType
	if raw := r.URL.Query().Get("type"); raw != "" && raw != "all" {
		t, err := domain.ParseTransactionType(raw)
		if err != nil {
			writeDomainError(w, "invalid type filter", err)
			return
		}
		filter = t
	}

	txs := domain.FilterTransactions(h.store.Transactions(), filter)

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: txs,
		Total:        len(txs),
	})
}

// Categories lists the suggested categories, optionally for one ?type=.
func (h *TransactionHandler) Categories(w http.ResponseWriter, r *http.Request) {
	types := []domain.TransactionType{domain.TransactionIncome, domain.TransactionExpense}
	if raw := r.URL.Query().Get("type"); raw != "" && raw != "all" {
		t, err := domain.ParseTransactionType(raw)
		if err != nil {
			writeDomainError(w, "invalid type filter", err)
			return
		}
		types = []domain.TransactionType{t}
	}

	resp := dto.CategoriesResponse{Categories: make(map[domain.TransactionType][]string, len(types))}
	for _, t := range types {
		resp.Categories[t] = domain.CategoriesFor(t)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete reverses and removes a transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	if err := h.store.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainError(w, "failed to delete transaction", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
