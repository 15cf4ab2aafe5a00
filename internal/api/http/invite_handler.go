package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/service"
)

// InviteHandler maps the invite lifecycle onto HTTP. Handlers supply the
// current time; the service itself never reads the clock.
type InviteHandler struct {
	inviteSvc service.InviteService
}

func NewInviteHandler(inviteSvc service.InviteService) *InviteHandler {
	return &InviteHandler{inviteSvc: inviteSvc}
}

type createInviteRequest struct {
	Email string            `json:"email"`
	Role  domain.MemberRole `json:"role"`
}

func (h *InviteHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email and role are required"})
		return
	}

	result, err := h.inviteSvc.CreateInvite(r.Context(), claims.FundID, claims.UserID, req.Email, req.Role, time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *InviteHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	invites, err := h.inviteSvc.ListInvites(r.Context(), claims.FundID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"invites": invites})
}

type verifyResponse struct {
	Valid          bool           `json:"valid"`
	Invite         *domain.Invite `json:"invite,omitempty"`
	FundName       string         `json:"fund_name,omitempty"`
	InviterName    string         `json:"inviter_name,omitempty"`
	IsExistingUser bool           `json:"is_existing_user,omitempty"`
	Error          string         `json:"error,omitempty"`
}

func (h *InviteHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "token is required"})
		return
	}

	v, err := h.inviteSvc.VerifyToken(r.Context(), token, time.Now().UTC())
	if err != nil {
		if statusForError(err) == http.StatusInternalServerError {
			writeError(w, err)
			return
		}
		// Invalid tokens are an expected outcome for this public
		// endpoint, not an error status.
		writeJSON(w, http.StatusOK, verifyResponse{Valid: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Valid:          true,
		Invite:         v.Invite,
		FundName:       v.FundName,
		InviterName:    v.InviterName,
		IsExistingUser: v.IsExistingUser,
	})
}

type acceptInviteRequest struct {
	Token     string `json:"token"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type acceptInviteResponse struct {
	Success        bool         `json:"success"`
	User           *domain.User `json:"user"`
	AccessToken    string       `json:"access_token,omitempty"`
	RefreshToken   string       `json:"refresh_token,omitempty"`
	IsExistingUser bool         `json:"is_existing_user"`
}

func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "token is required"})
		return
	}

	acc, err := h.inviteSvc.AcceptInvite(r.Context(), service.AcceptRequest{
		Token:     req.Token,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, acceptInviteResponse{
		Success:        true,
		User:           acc.User,
		AccessToken:    acc.AccessToken,
		RefreshToken:   acc.RefreshToken,
		IsExistingUser: acc.IsExistingUser,
	})
}

func (h *InviteHandler) Resend(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	inviteID := mux.Vars(r)["id"]

	result, err := h.inviteSvc.ResendInvite(r.Context(), inviteID, claims.FundID, time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "email_error": result.EmailError})
}

func (h *InviteHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	inviteID := mux.Vars(r)["id"]

	if err := h.inviteSvc.CancelInvite(r.Context(), inviteID, claims.FundID, time.Now().UTC()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
