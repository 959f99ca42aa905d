// Package invites contains the handler that emails invitations.
package invites

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/requestid"
	"github.com/matt-dz/recipecenter/internal/api/token"
	"github.com/matt-dz/recipecenter/internal/email"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/invite"
	mJson "github.com/matt-dz/recipecenter/internal/json"
	"github.com/matt-dz/recipecenter/internal/metrics"
)

type InviteRequest struct {
	Email string `json:"email"`
}

// HandleSendInvite emails an invitation signed with the name of the
// current user.
//
//	POST /api/invites
func HandleSendInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	if env.Invites == nil {
		_ = apiError.EncodeError(w, apiError.EmailDisabled, "email is not configured", requestID)
		return
	}

	claims, err := token.AccessTokenFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract access token from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	inviter := strings.TrimSpace(claims.Name)
	if inviter == "" {
		inviter = claims.Username
	}

	var request InviteRequest
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "sending invite")
	err = env.Invites.SendInviteEmail(ctx, request.Email, inviter)
	switch {
	case err == nil:
	case errors.Is(err, invite.ErrInvalidEmail), errors.Is(err, invite.ErrInvalidInviterName):
		_ = apiError.EncodeError(w, apiError.InvalidInvite, err.Error(), requestID)
		return
	case errors.Is(err, email.ErrNotConfigured):
		env.Metrics.IncrementInvites(metrics.ResultFailure)
		_ = apiError.EncodeError(w, apiError.EmailDisabled, "email is not configured", requestID)
		return
	default:
		env.Metrics.IncrementInvites(metrics.ResultFailure)
		env.Logger.ErrorContext(ctx, "failed to send invite", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Metrics.IncrementInvites(metrics.ResultSuccess)
	w.WriteHeader(http.StatusAccepted)
}
