package handler

import (
	"context"
	"net/http"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
)

// SessionService defines the behavior needed by SessionHandler.
type SessionService interface {
	User() *domain.User
	Login(ctx context.Context, name, email string) (domain.User, error)
	Logout(ctx context.Context)
}

// SessionHandler handles login and logout.
type SessionHandler struct {
	store SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store SessionService) *SessionHandler {
	return &SessionHandler{store: store}
}

// Get returns the current user.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SessionResponse{User: h.store.User()})
}

// Login replaces the current user.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.store.Login(r.Context(), req.Name, req.Email)
	if err != nil {
		writeDomainError(w, "failed to log in", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.SessionResponse{User: &user})
}

// Logout clears the current user.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
