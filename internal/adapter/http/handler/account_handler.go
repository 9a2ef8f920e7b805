package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	Accounts() []domain.Account
	AddAccount(ctx context.Context, input usecase.AddAccountInput) (domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	store AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(store AccountService) *AccountHandler {
	return &AccountHandler{store: store}
}

// Create opens a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.store.AddAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create account", err)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// List lists accounts in insertion order.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.store.Accounts()

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// Delete removes an account. Transactions referencing it are kept.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	if err := h.store.DeleteAccount(r.Context(), id); err != nil {
		writeDomainError(w, "failed to delete account", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
