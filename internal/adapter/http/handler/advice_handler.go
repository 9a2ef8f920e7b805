package handler

import (
	"context"
	"net/http"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

// Adviser produces financial advice from the current state.
type Adviser interface {
	Advise(ctx context.Context) usecase.Advice
}

// AdviceHandler handles advice requests.
type AdviceHandler struct {
	adviser Adviser
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviser Adviser) *AdviceHandler {
	return &AdviceHandler{adviser: adviser}
}

// Advise asks the advice provider for a recommendation. Provider problems
// come back as fallback text with status 200.
func (h *AdviceHandler) Advise(w http.ResponseWriter, r *http.Request) {
	advice := h.adviser.Advise(r.Context())

	writeJSON(w, http.StatusOK, dto.AdviceResponse{
		Summary: advice.Summary,
		Advice:  advice.Text,
	})
}
