// Package ping contains handlers for pinging the server
package ping

import (
	"net/http"

	mJson "github.com/matt-dz/recipecenter/internal/json"
)

type PingResponse struct {
	Status string `json:"status"`
}

// HandlePing reports that the server is up.
//
//	GET /api/ping
func HandlePing(w http.ResponseWriter, r *http.Request) {
	_ = mJson.EncodeJSON(w, http.StatusOK, PingResponse{Status: "ok"})
}
