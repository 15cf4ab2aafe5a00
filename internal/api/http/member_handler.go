package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/service"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

type updateRoleRequest struct {
	Role domain.MemberRole `json:"role"`
}

func (h *MemberHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	userID, err := parseUserID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "role is required"})
		return
	}

	if err := h.memberSvc.UpdateMemberRole(r.Context(), claims.UserID, claims.FundID, userID, req.Role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	userID, err := parseUserID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	if err := h.memberSvc.RemoveMember(r.Context(), claims.UserID, claims.FundID, userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	users, memberships, err := h.memberSvc.ListMembers(r.Context(), claims.FundID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": users, "memberships": memberships})
}

func parseUserID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 32)
	return int32(id), err
}
