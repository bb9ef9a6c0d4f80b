package rest

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
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/campus-ledger/internal/adapter/memory"
	"github.com/heartmarshall/campus-ledger/internal/auth"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
	"github.com/heartmarshall/campus-ledger/internal/service/governance"
	"github.com/heartmarshall/campus-ledger/internal/service/wallet"
	"github.com/heartmarshall/campus-ledger/pkg/ctxutil"
)

type testServer struct {
	mux        *http.ServeMux
	governance *governance.Service
	wallet     *wallet.Service
	clock      *clockwork.FakeClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := memory.New()
	jr := memory.NewJournal(db)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC))
	gate := auth.NewGate()

	gov := governance.NewService(log, memory.NewStore(db, ledger.NamespaceGovernance), db, jr, gate, clock)
	wal := wallet.NewService(log, memory.NewStore(db, ledger.NamespaceWallet), db, jr, gate, clock)
	require.NoError(t, gov.Initialize(context.Background(), "GADMIN"))
	require.NoError(t, wal.Initialize(context.Background(), "GADMIN"))

	mux := http.NewServeMux()
	NewGovernanceHandler(gov, log).Register(mux)
	NewWalletHandler(wal, log).Register(mux)
	NewJournalHandler(jr, log).Register(mux)

	return &testServer{mux: mux, governance: gov, wallet: wal, clock: clock}
}

// do sends a request as caller (anonymous when empty) and returns the recorder.
func (s *testServer) do(t *testing.T, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if caller != "" {
		req = req.WithContext(ctxutil.WithCaller(req.Context(), caller))
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
