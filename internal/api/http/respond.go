package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"investor-portal-backend/internal/domain"
	"investor-portal-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps business-rule failures to 4xx with the error message;
// anything else is a dependency failure and stays opaque.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateInvite),
		errors.Is(err, domain.ErrAlreadyMember):
		return http.StatusConflict
	// Cross-fund membership targets surface as not-found rather than
	// forbidden so the response does not leak who belongs to other funds.
	case errors.Is(err, domain.ErrInviteNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrFundNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInviteExpired),
		errors.Is(err, domain.ErrInviteUsed),
		errors.Is(err, domain.ErrInviteNotPending),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
