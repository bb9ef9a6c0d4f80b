package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/service/governance"
)

type governanceService interface {
	CreateClub(ctx context.Context, input governance.CreateClubInput) (*domain.Club, error)
	JoinClub(ctx context.Context, input governance.JoinClubInput) (*domain.Club, error)
	CreateProposal(ctx context.Context, input governance.CreateProposalInput) (*domain.Proposal, error)
	Vote(ctx context.Context, input governance.VoteInput) (*domain.Proposal, error)
	GetProposal(ctx context.Context, id uint32) (*domain.Proposal, error)
	GetClub(ctx context.Context, id string) (*domain.Club, error)
	ClubCount(ctx context.Context) (uint32, error)
}

// GovernanceHandler serves club and proposal endpoints.
type GovernanceHandler struct {
	svc governanceService
	log *slog.Logger
}

// NewGovernanceHandler creates a GovernanceHandler.
func NewGovernanceHandler(svc governanceService, logger *slog.Logger) *GovernanceHandler {
	return &GovernanceHandler{svc: svc, log: logger.With("handler", "governance")}
}

// Register mounts the governance routes on mux.
func (h *GovernanceHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /governance/clubs", h.CreateClub)
	mux.HandleFunc("GET /governance/clubs/count", h.ClubCount)
	mux.HandleFunc("GET /governance/clubs/{id}", h.GetClub)
	mux.HandleFunc("POST /governance/clubs/{id}/members", h.JoinClub)
	mux.HandleFunc("POST /governance/proposals", h.CreateProposal)
	mux.HandleFunc("GET /governance/proposals/{id}", h.GetProposal)
	mux.HandleFunc("POST /governance/proposals/{id}/votes", h.Vote)
}

type createClubRequest struct {
	Caller      string `json:"caller"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type joinClubRequest struct {
	Caller string `json:"caller"`
}

type createProposalRequest struct {
	Caller       string  `json:"caller"`
	ClubID       string  `json:"club_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Amount       *int64  `json:"amount"`
	Recipient    *string `json:"recipient"`
	DurationDays uint64  `json:"duration_days"`
}

type voteRequest struct {
	Caller  string `json:"caller"`
	Support *bool  `json:"support"`
}

type countResponse struct {
	Count uint32 `json:"count"`
}

// CreateClub handles POST /governance/clubs.
func (h *GovernanceHandler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req createClubRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller, ok := actingParty(r, req.Caller)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	club, err := h.svc.CreateClub(r.Context(), governance.CreateClubInput{
		Caller:      caller,
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, club)
}

// JoinClub handles POST /governance/clubs/{id}/members.
func (h *GovernanceHandler) JoinClub(w http.ResponseWriter, r *http.Request) {
	var req joinClubRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	caller, ok := actingParty(r, req.Caller)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	club, err := h.svc.JoinClub(r.Context(), governance.JoinClubInput{
		Caller: caller,
		ClubID: r.PathValue("id"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, club)
}

// GetClub handles GET /governance/clubs/{id}.
func (h *GovernanceHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	club, err := h.svc.GetClub(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if club == nil {
		writeError(w, http.StatusNotFound, "club not found")
		return
	}

	writeJSON(w, http.StatusOK, club)
}

// ClubCount handles GET /governance/clubs/count.
func (h *GovernanceHandler) ClubCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.ClubCount(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: count})
}

// CreateProposal handles POST /governance/proposals.
func (h *GovernanceHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req createProposalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller, ok := actingParty(r, req.Caller)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var recipient *domain.Address
	if req.Recipient != nil {
		addr := domain.Address(*req.Recipient)
		recipient = &addr
	}

	proposal, err := h.svc.CreateProposal(r.Context(), governance.CreateProposalInput{
		Caller:       caller,
		ClubID:       req.ClubID,
		Title:        req.Title,
		Description:  req.Description,
		Amount:       req.Amount,
		Recipient:    recipient,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, proposal)
}

// GetProposal handles GET /governance/proposals/{id}.
func (h *GovernanceHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, ok := proposalID(w, r)
	if !ok {
		return
	}

	proposal, err := h.svc.GetProposal(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if proposal == nil {
		writeError(w, http.StatusNotFound, "proposal not found")
		return
	}

	writeJSON(w, http.StatusOK, proposal)
}

// Vote handles POST /governance/proposals/{id}/votes.
func (h *GovernanceHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := proposalID(w, r)
	if !ok {
		return
	}

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Support == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation: support: required"})
		return
	}
	caller, ok := actingParty(r, req.Caller)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	proposal, err := h.svc.Vote(r.Context(), governance.VoteInput{
		Caller:     caller,
		ProposalID: id,
		Support:    *req.Support,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, proposal)
}

func proposalID(w http.ResponseWriter, r *http.Request) (uint32, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid proposal id")
		return 0, false
	}
	return uint32(id), true
}
