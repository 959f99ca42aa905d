// Package auth contains handlers for the auth endpoints
package auth

import (
	"net/http"
)

// HandleVerifySession answers 204 once the authorization middleware has
// accepted the access token; the middleware writes every failure.
//
//	GET /api/auth/session/verify
func HandleVerifySession(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
