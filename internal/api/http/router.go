package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all routes. Verification and acceptance are public;
// everything else requires an authenticated fund manager.
func NewRouter(invites *InviteHandler, members *MemberHandler, auth *AuthMiddleware, db *sql.DB) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public invite endpoints
	api.HandleFunc("/invites/verify", invites.Verify).Methods(http.MethodGet)
	api.HandleFunc("/invites/accept", invites.Accept).Methods(http.MethodPost)

	// Manager-only endpoints
	managed := api.NewRoute().Subrouter()
	managed.Use(auth.Authenticate, auth.RequireManager)
	managed.HandleFunc("/invites", invites.Create).Methods(http.MethodPost)
	managed.HandleFunc("/invites", invites.List).Methods(http.MethodGet)
	managed.HandleFunc("/invites/{id}/resend", invites.Resend).Methods(http.MethodPost)
	managed.HandleFunc("/invites/{id}/cancel", invites.Cancel).Methods(http.MethodPost)
	managed.HandleFunc("/members", members.List).Methods(http.MethodGet)
	managed.HandleFunc("/members/{userId}/role", members.UpdateRole).Methods(http.MethodPatch)
	managed.HandleFunc("/members/{userId}", members.Remove).Methods(http.MethodDelete)

	return r
}
