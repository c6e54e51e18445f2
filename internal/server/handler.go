// Package server exposes the group service as a JSON REST API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shreesh-mishra-24/expense-splitter/internal/models"
	"github.com/shreesh-mishra-24/expense-splitter/internal/service"
	"github.com/shreesh-mishra-24/expense-splitter/internal/storage"
)

const maxBodyBytes = 1 << 20

type handler struct {
	groups *service.GroupService
}

type createGroupRequest struct {
	Name string `json:"name"`
}

type createMemberRequest struct {
	Name string `json:"name"`
}

type createExpenseRequest struct {
	Description    string   `json:"description"`
	Amount         float64  `json:"amount"`
	PayerID        string   `json:"payer_id"`
	ParticipantIDs []string `json:"participant_ids"`
}

// NewHandler builds the API routing table around the given group service.
func NewHandler(groups *service.GroupService) http.Handler {
	h := &handler{groups: groups}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("POST /api/v1/groups", h.handleCreateGroup)
	mux.HandleFunc("GET /api/v1/groups", h.handleListGroups)
	mux.HandleFunc("GET /api/v1/groups/{groupID}", h.handleGetGroup)
	mux.HandleFunc("DELETE /api/v1/groups/{groupID}", h.handleDeleteGroup)

	mux.HandleFunc("POST /api/v1/groups/{groupID}/members", h.handleAddMember)
	mux.HandleFunc("GET /api/v1/groups/{groupID}/members", h.handleListMembers)
	mux.HandleFunc("GET /api/v1/groups/{groupID}/members/{memberID}", h.handleGetMember)
	mux.HandleFunc("DELETE /api/v1/groups/{groupID}/members/{memberID}", h.handleRemoveMember)

	mux.HandleFunc("POST /api/v1/groups/{groupID}/expenses", h.handleAddExpense)
	mux.HandleFunc("GET /api/v1/groups/{groupID}/expenses", h.handleListExpenses)
	mux.HandleFunc("GET /api/v1/groups/{groupID}/expenses/{expenseID}", h.handleGetExpense)
	mux.HandleFunc("DELETE /api/v1/groups/{groupID}/expenses/{expenseID}", h.handleDeleteExpense)

	mux.HandleFunc("GET /api/v1/groups/{groupID}/balances", h.handleGetBalances)
	mux.HandleFunc("GET /api/v1/groups/{groupID}/settlements", h.handleGetSettlements)

	return mux
}

func (h *handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "Expense Splitter API",
		"version": "1.0.0",
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *handler) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), req.Name)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *handler) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.ListGroups(r.Context())
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	if groups == nil {
		groups = []*models.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *handler) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.GetGroup(r.Context(), r.PathValue("groupID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *handler) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.groups.DeleteGroup(r.Context(), r.PathValue("groupID")); err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.groups.AddMember(r.Context(), r.PathValue("groupID"), req.Name)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *handler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.GetGroup(r.Context(), r.PathValue("groupID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, group.Members)
}

func (h *handler) handleGetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.groups.GetMember(r.Context(), r.PathValue("groupID"), r.PathValue("memberID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *handler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	err := h.groups.RemoveMember(r.Context(), r.PathValue("groupID"), r.PathValue("memberID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense := &models.Expense{
		Description:    req.Description,
		Amount:         req.Amount,
		PayerID:        req.PayerID,
		ParticipantIDs: req.ParticipantIDs,
	}
	created, err := h.groups.AddExpense(r.Context(), r.PathValue("groupID"), expense)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	group, err := h.groups.GetGroup(r.Context(), r.PathValue("groupID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, group.Expenses)
}

func (h *handler) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	expense, err := h.groups.GetExpense(r.Context(), r.PathValue("groupID"), r.PathValue("expenseID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *handler) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	err := h.groups.DeleteExpense(r.Context(), r.PathValue("groupID"), r.PathValue("expenseID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleGetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.groups.GetBalances(r.Context(), r.PathValue("groupID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

func (h *handler) handleGetSettlements(w http.ResponseWriter, r *http.Request) {
	plan, err := h.groups.GetSettlements(r.Context(), r.PathValue("groupID"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	return dec.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusForError maps service and storage errors to HTTP statuses:
// not-found sentinels become 404, validation errors 400, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, storage.ErrGroupNotFound),
		errors.Is(err, storage.ErrMemberNotFound),
		errors.Is(err, storage.ErrExpenseNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNoParticipants),
		errors.Is(err, service.ErrDuplicateParticipant),
		errors.Is(err, service.ErrUnknownMember),
		errors.Is(err, service.ErrMemberHasExpenses):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
