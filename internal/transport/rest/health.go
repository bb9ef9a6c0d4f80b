package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const pingTimeout = 3 * time.Second

// storePinger defines the minimal interface for ledger backend health checks.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	backend string
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. backend names the configured
// ledger driver and is reported by /health.
func NewHealthHandler(store storePinger, backend, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{store: store, backend: backend, version: version, clock: clock}
}

// Register mounts the probe routes on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
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
	Backend string `json:"backend,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now(),
	})
}

// Ready is the readiness probe. Pings the ledger store: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status, body := http.StatusOK, "ok"
	if err := h.store.Ping(ctx); err != nil {
		status, body = http.StatusServiceUnavailable, "down"
	}

	writeJSON(w, status, HealthResponse{
		Status:    body,
		Timestamp: h.clock.Now(),
	})
}

// Health is the full health check. Pings the ledger store with latency
// measurement and includes version and backend.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	start := h.clock.Now()
	err := h.store.Ping(ctx)
	latency := h.clock.Since(start)

	comp := CompStatus{Status: "ok", Backend: h.backend, Latency: latency.String()}
	status := http.StatusOK
	if err != nil {
		comp = CompStatus{Status: "down", Backend: h.backend}
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"ledger": comp},
		Timestamp:  h.clock.Now(),
	})
}
