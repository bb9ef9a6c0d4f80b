package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/ledger"
)

const (
	defaultJournalLimit = 50
	maxJournalLimit     = 200
)

type journalReader interface {
	ListRecent(ctx context.Context, namespace string, limit int) ([]domain.Invocation, error)
}

// JournalHandler exposes the most recent invocations of a namespace.
type JournalHandler struct {
	journal journalReader
	log     *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(journal journalReader, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{journal: journal, log: logger.With("handler", "journal")}
}

// Register mounts GET /{namespace}/journal on mux.
func (h *JournalHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /governance/journal", h.list(ledger.NamespaceGovernance))
	mux.HandleFunc("GET /wallet/journal", h.list(ledger.NamespaceWallet))
}

type invocationResponse struct {
	ID         string         `json:"id"`
	Operation  string         `json:"operation"`
	Caller     string         `json:"caller"`
	Details    map[string]any `json:"details,omitempty"`
	LedgerTime uint64         `json:"ledger_time"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (h *JournalHandler) list(ns ledger.Namespace) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultJournalLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = min(n, maxJournalLimit)
		}

		invs, err := h.journal.ListRecent(r.Context(), ns.String(), limit)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}

		resp := make([]invocationResponse, 0, len(invs))
		for _, inv := range invs {
			resp = append(resp, invocationResponse{
				ID:         inv.ID.String(),
				Operation:  string(inv.Operation),
				Caller:     string(inv.Caller),
				Details:    inv.Details,
				LedgerTime: inv.LedgerTime,
				CreatedAt:  inv.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
