package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// overviewTracker owns the background aggregation runs.
type overviewTracker interface {
	Snapshot() domain.Overview
	Refresh(ctx context.Context)
}

// ActivityHandler exposes the recent activity overview.
type ActivityHandler struct {
	tracker overviewTracker
	log     *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(tracker overviewTracker, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{tracker: tracker, log: logger.With("handler", "activity")}
}

// Overview returns the current snapshot. While any half is still loading the
// status is 202 so pollers know to come back; otherwise 200, including when a
// half failed (its error is in the body).
func (h *ActivityHandler) Overview(w http.ResponseWriter, r *http.Request) {
	snap := h.tracker.Snapshot()

	status := http.StatusOK
	if snap.Pending() {
		status = http.StatusAccepted
	}
	writeJSON(w, status, snap)
}

// Refresh starts a new aggregation run, superseding any run in flight, and
// returns the snapshot immediately with both halves loading.
func (h *ActivityHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.tracker.Refresh(r.Context())
	h.log.InfoContext(r.Context(), "refresh requested")
	writeJSON(w, http.StatusAccepted, h.tracker.Snapshot())
}
