package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-ledger/internal/domain"
	"github.com/heartmarshall/campus-ledger/internal/service/wallet"
)

type walletService interface {
	RegisterStudent(ctx context.Context, input wallet.RegisterStudentInput) (*domain.Student, error)
	CreateEvent(ctx context.Context, input wallet.CreateEventInput) (*domain.Event, error)
	AttendEvent(ctx context.Context, input wallet.AttendEventInput) (int64, error)
	Transfer(ctx context.Context, input wallet.TransferInput) error
	GetBalance(ctx context.Context, addr domain.Address) (int64, error)
	GetStudent(ctx context.Context, addr domain.Address) (*domain.Student, error)
}

// WalletHandler serves student, event and transfer endpoints.
type WalletHandler struct {
	svc walletService
	log *slog.Logger
}

// NewWalletHandler creates a WalletHandler.
func NewWalletHandler(svc walletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, log: logger.With("handler", "wallet")}
}

// Register mounts the wallet routes on mux.
func (h *WalletHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /wallet/students", h.RegisterStudent)
	mux.HandleFunc("GET /wallet/students/{address}", h.GetStudent)
	mux.HandleFunc("GET /wallet/balances/{address}", h.GetBalance)
	mux.HandleFunc("POST /wallet/events", h.CreateEvent)
	mux.HandleFunc("POST /wallet/events/{id}/attendance", h.AttendEvent)
	mux.HandleFunc("POST /wallet/transfers", h.Transfer)
}

type registerStudentRequest struct {
	Student    string `json:"student"`
	Name       string `json:"name"`
	StudentID  string `json:"student_id"`
	Department string `json:"department"`
}

type createEventRequest struct {
	Organizer       string `json:"organizer"`
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	RewardAmount    int64  `json:"reward_amount"`
	MaxParticipants uint32 `json:"max_participants"`
}

type attendEventRequest struct {
	Student string `json:"student"`
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type balanceResponse struct {
	Address domain.Address `json:"address"`
	Balance int64          `json:"balance"`
}

// RegisterStudent handles POST /wallet/students.
func (h *WalletHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var req registerStudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	student, ok := actingParty(r, req.Student)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.svc.RegisterStudent(r.Context(), wallet.RegisterStudentInput{
		Student:    student,
		Name:       req.Name,
		StudentID:  req.StudentID,
		Department: req.Department,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// GetStudent handles GET /wallet/students/{address}.
func (h *WalletHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.svc.GetStudent(r.Context(), domain.Address(r.PathValue("address")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if student == nil {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	writeJSON(w, http.StatusOK, student)
}

// GetBalance handles GET /wallet/balances/{address}. Unknown addresses have
// a zero balance.
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	addr := domain.Address(r.PathValue("address"))
	balance, err := h.svc.GetBalance(r.Context(), addr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Address: addr, Balance: balance})
}

// CreateEvent handles POST /wallet/events.
func (h *WalletHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	organizer, ok := actingParty(r, req.Organizer)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), wallet.CreateEventInput{
		Organizer:       organizer,
		ID:              req.ID,
		Name:            req.Name,
		Description:     req.Description,
		RewardAmount:    req.RewardAmount,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// AttendEvent handles POST /wallet/events/{id}/attendance.
func (h *WalletHandler) AttendEvent(w http.ResponseWriter, r *http.Request) {
	var req attendEventRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	student, ok := actingParty(r, req.Student)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	balance, err := h.svc.AttendEvent(r.Context(), wallet.AttendEventInput{
		Student: student,
		EventID: r.PathValue("id"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Address: student, Balance: balance})
}

// Transfer handles POST /wallet/transfers.
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	from, ok := actingParty(r, req.From)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	err := h.svc.Transfer(r.Context(), wallet.TransferInput{
		From:   from,
		To:     domain.Address(req.To),
		Amount: req.Amount,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
