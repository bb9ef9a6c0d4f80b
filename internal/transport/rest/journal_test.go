package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

func TestJournal_ListsNamespaceNewestFirst(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/governance/clubs", "GADMIN", map[string]any{"id": "c1", "name": "Chess"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.do(t, http.MethodPost, "/governance/clubs/c1/members", "GBOB", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/governance/journal", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]invocationResponse](t, rec)
	require.Len(t, got, 3) // initialize, create club, join
	assert.Equal(t, string(domain.OperationJoinClub), got[0].Operation)
	assert.Equal(t, "GBOB", got[0].Caller)
	assert.Equal(t, string(domain.OperationInitialize), got[2].Operation)

	rec = s.do(t, http.MethodGet, "/wallet/journal?limit=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	wal := decode[[]invocationResponse](t, rec)
	require.Len(t, wal, 1)
	assert.Equal(t, string(domain.OperationInitialize), wal[0].Operation)
}

func TestJournal_Limit(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, id := range []string{"c1", "c2", "c3"} {
		rec := s.do(t, http.MethodPost, "/governance/clubs", "GADMIN", map[string]any{"id": id, "name": id})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := s.do(t, http.MethodGet, "/governance/journal?limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]invocationResponse](t, rec), 2)

	for _, bad := range []string{"0", "-1", "ten"} {
		rec := s.do(t, http.MethodGet, "/governance/journal?limit="+bad, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

type failingJournal struct{}

func (failingJournal) ListRecent(context.Context, string, int) ([]domain.Invocation, error) {
	return nil, errors.New("connection reset")
}

func TestJournal_StoreError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	NewJournalHandler(failingJournal{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wallet/journal", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
