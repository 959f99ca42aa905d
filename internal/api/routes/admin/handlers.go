// Package admin contains handlers for the admin endpoints
package admin

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/requestid"
	"github.com/matt-dz/recipecenter/internal/env"
	mJson "github.com/matt-dz/recipecenter/internal/json"
	"github.com/matt-dz/recipecenter/internal/user"
)

type ListUsersResponse struct {
	Users []user.User `json:"users"`
}

// HandleListUsers returns every account. Password hashes are never
// serialized.
//
//	GET /api/admin/users
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	users, err := env.Users.LoadAll(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, ListUsersResponse{Users: users}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
