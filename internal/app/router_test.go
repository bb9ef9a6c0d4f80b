package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/campus-ledger/internal/auth"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/transport/middleware"
)

const testSecret = "router-test-secret-that-is-long-enough"

type harness struct {
	handler http.Handler
	tokens  *auth.JWTManager
	svcs    *Services
	logger  *slog.Logger
	ledger  config.LedgerConfig
}

func newHarness(t *testing.T, perMinute int) *harness {
	t.Helper()

	cfg := &config.Config{
		Database:  config.DatabaseConfig{Driver: config.DriverMemory},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST"},
		RateLimit: config.RateLimitConfig{Enabled: perMinute > 0, PerMinute: perMinute},
		Ledger:    config.LedgerConfig{GovernanceAdmin: "GADMIN", WalletAdmin: "GADMIN"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := clockwork.NewFakeClock()

	be, err := OpenBackend(context.Background(), cfg.Database)
	require.NoError(t, err)
	t.Cleanup(be.Close)

	svcs := NewServices(logger, be, clock)
	require.NoError(t, svcs.Bootstrap(context.Background(), logger, cfg.Ledger))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(clock, time.Minute)
		t.Cleanup(limiter.Stop)
	}

	tokens := auth.NewJWTManager(testSecret, "campus-test", time.Hour)
	return &harness{
		svcs:    svcs,
		logger:  logger,
		ledger:  cfg.Ledger,
		handler: NewRouter(RouterDeps{
			Logger:   logger,
			Config:   cfg,
			Backend:  be,
			Services: svcs,
			Tokens:   tokens,
			Limiter:  limiter,
			Clock:    clock,
		}),
		tokens: tokens,
	}
}

func (h *harness) do(t *testing.T, method, path, addr string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if addr != "" {
		token, err := h.tokens.GenerateAccessToken(domainAddr(addr))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_BearerTokenDrivesGate(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0)

	rec := h.do(t, http.MethodPost, "/governance/clubs", "GADMIN", map[string]any{"id": "c1", "name": "Chess"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = h.do(t, http.MethodPost, "/governance/clubs/c1/members", "GBOB", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = h.do(t, http.MethodPost, "/governance/clubs/c1/members", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MemoryBackendBootstrapped(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0)

	rec := h.do(t, http.MethodPost, "/governance/clubs", "GADMIN", map[string]any{"id": "c1", "name": "Chess"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = h.do(t, http.MethodPost, "/wallet/events", "GADMIN", map[string]any{"id": "e1", "name": "Fair", "reward_amount": 10, "max_participants": 5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// A second bootstrap, as on restart, must not reset the ledger.
	require.NoError(t, h.svcs.Bootstrap(context.Background(), h.logger, h.ledger))

	rec = h.do(t, http.MethodGet, "/governance/clubs/count", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var count struct {
		Count uint32 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&count))
	assert.Equal(t, uint32(1), count.Count)
}

func TestRouter_InvalidTokenRejected(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/governance/clubs/count", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Probes(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0)

	for _, path := range []string{"/live", "/ready", "/health"} {
		rec := h.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_RateLimitPerCaller(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 2)

	for i := 0; i < 2; i++ {
		rec := h.do(t, http.MethodGet, "/governance/clubs/count", "GALICE", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, h.do(t, http.MethodGet, "/governance/clubs/count", "GALICE", nil).Code)
	assert.Equal(t, http.StatusOK, h.do(t, http.MethodGet, "/governance/clubs/count", "GBOB", nil).Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()
	h := newHarness(t, 0)

	assert.Equal(t, http.StatusNotFound, h.do(t, http.MethodGet, "/graphql", "", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, h.do(t, http.MethodDelete, "/governance/clubs/c1", "", nil).Code)
}
