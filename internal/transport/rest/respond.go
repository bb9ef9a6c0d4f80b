package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/pkg/ctxutil"
)

// maxBodyBytes caps request bodies; ledger invocations are small.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
	Code  uint32 `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads exactly one JSON object from the body. Unknown fields are
// rejected so a misspelled acting party never falls back to the caller.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("decode body: trailing data")
	}
	return nil
}

// actingParty returns the identity an invocation claims to act for: the
// explicit value from the request when present, otherwise the
// authenticated caller. The service gate compares the two.
func actingParty(r *http.Request, claimed string) (domain.Address, bool) {
	if claimed != "" {
		return domain.Address(claimed), true
	}
	caller, ok := ctxutil.CallerFromCtx(r.Context())
	return domain.Address(caller), ok
}

// handleError maps service errors to HTTP responses. Contract errors carry
// their numeric code.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		ce     *domain.ContractError
		status int
		msg    string
	)

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		status, msg = http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		status, msg = http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotInitialized):
		status, msg = http.StatusPreconditionFailed, "ledger not initialized"
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := errorResponse{Error: msg}
	if errors.As(err, &ce) {
		resp.Error = ce.Message
		resp.Code = ce.Code
	}
	writeJSON(w, status, resp)
}
