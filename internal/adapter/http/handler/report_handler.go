package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wealthflow/wealthflow/internal/adapter/http/dto"
	"github.com/wealthflow/wealthflow/internal/domain"
	"github.com/wealthflow/wealthflow/internal/usecase"
)

const defaultRecentTransactions = 5

// SnapshotReader exposes a consistent copy of the store state.
type SnapshotReader interface {
	Snapshot() domain.Snapshot
}

// Reconciler produces reconciliation reports.
type Reconciler interface {
	GenerateReconciliationReport() *usecase.ReconciliationReport
}

// ReportHandler serves the read-only derived views: state, dashboard,
// monthly report and reconciliation.
type ReportHandler struct {
	store      SnapshotReader
	reconciler Reconciler
	converter  domain.Converter
	now        func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(store SnapshotReader, reconciler Reconciler, converter domain.Converter) *ReportHandler {
	return &ReportHandler{
		store:      store,
		reconciler: reconciler,
		converter:  converter,
		now:        time.Now,
	}
}

// State returns the whole store state.
func (h *ReportHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StateFromSnapshot(h.store.Snapshot()))
}

// Dashboard returns the headline figures and the most recent transactions
// (?recent=N, default 5).
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	recent := defaultRecentTransactions
	if raw := r.URL.Query().Get("recent"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid recent parameter", raw)
			return
		}
		recent = n
	}

	snap := h.store.Snapshot()
	dash := domain.BuildDashboard(snap, h.converter, h.now())

	writeJSON(w, http.StatusOK, dto.DashboardFromDomain(dash, domain.RecentTransactions(snap.Transactions, recent)))
}

// Monthly returns income and expense per month.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	series := domain.MonthlySeries(h.store.Snapshot().Transactions)
	writeJSON(w, http.StatusOK, dto.MonthlyReportFromDomain(series))
}

// Reconciliation compares balances with the transactions behind them.
func (h *ReportHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ReconciliationFromDomain(h.reconciler.GenerateReconciliationReport()))
}
