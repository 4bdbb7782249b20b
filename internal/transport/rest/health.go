package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

const probeTimeout = 3 * time.Second

// cmsPinger checks that the content API answers with the configured token.
type cmsPinger interface {
	Ping(ctx context.Context) error
}

// snapshotter exposes the last aggregation state.
type snapshotter interface {
	Snapshot() domain.Overview
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	cms     cmsPinger
	tracker snapshotter
	version string
}

// NewHealthHandler creates a HealthHandler. tracker may be nil.
func NewHealthHandler(cms cmsPinger, tracker snapshotter, version string) *HealthHandler {
	return &HealthHandler{cms: cms, tracker: tracker, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the CMS: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.cms.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: CMS reachability with latency, plus the
// state of both overview halves. Only an unreachable CMS makes it 503; a
// failed half is reported but the service itself is still up.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.cms.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["cms"] = CompStatus{Status: "down", Error: err.Error()}
		overallStatus = "down"
	} else {
		components["cms"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	if h.tracker != nil {
		snap := h.tracker.Snapshot()
		components["activity"] = CompStatus{Status: snap.Activity.Status.String(), Error: snap.Activity.Error}
		components["roster"] = CompStatus{Status: snap.Roster.Status.String(), Error: snap.Roster.Error}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
