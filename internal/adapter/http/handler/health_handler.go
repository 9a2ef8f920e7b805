package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/wealthflow/wealthflow/internal/usecase"
)

// StatusReporter reports the store lifecycle state.
type StatusReporter interface {
	Status() usecase.StoreStatus
}

// HealthCheck pings one backing service.
type HealthCheck func(ctx context.Context) error

// HealthHandler handles health check requests.
type HealthHandler struct {
	store  StatusReporter
	checks map[string]HealthCheck
}

// NewHealthHandler creates a new HealthHandler. checks maps a dependency
// name (postgres, redis, sqlite) to its ping.
func NewHealthHandler(store StatusReporter, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		store:  store,
		checks: checks,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once the store is loaded and every dependency
// answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	status := h.store.Status()
	if status != usecase.StatusReady {
		writeError(w, http.StatusServiceUnavailable, "store not ready", string(status))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := map[string]string{"status": "ready", "store": string(status)}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, name+" unhealthy", err.Error())
			return
		}
		resp[name] = "ok"
	}

	writeJSON(w, http.StatusOK, resp)
}
