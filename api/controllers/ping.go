package controllers

import (
	"net/http"

	"github.com/aurelioguzman/tendermarket-backend/api/middleware"
	"github.com/aurelioguzman/tendermarket-backend/api/responses"
)

// PublicPing answers unauthenticated reachability checks.
func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

// PrivatePing confirms the caller's token resolved to a user.
func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if userID := middleware.UserIDFromContext(r.Context()); userID != "" {
			payload["user_id"] = userID
		}
		responses.WriteSuccess(w, payload)
	}
}
