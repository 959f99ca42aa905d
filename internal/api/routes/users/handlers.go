// Package users contains handlers for accounts and sessions.
package users

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/requestid"
	"github.com/matt-dz/recipecenter/internal/api/token"
	"github.com/matt-dz/recipecenter/internal/auth"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/form"
	mJson "github.com/matt-dz/recipecenter/internal/json"
	"github.com/matt-dz/recipecenter/internal/metrics"
	"github.com/matt-dz/recipecenter/internal/password"
	"github.com/matt-dz/recipecenter/internal/user"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// startSession issues the access and CSRF cookies for id.
func startSession(w http.ResponseWriter, env *env.Env, id auth.Identity) (LoginResponse, error) {
	accessToken, err := token.NewAccessToken(id.TokenParams(), env)
	if err != nil {
		return LoginResponse{}, err
	}
	csrfToken, err := token.NewCSRFToken()
	if err != nil {
		return LoginResponse{}, err
	}
	http.SetCookie(w, token.NewAccessTokenCookie(accessToken, env))
	http.SetCookie(w, token.NewCSRFCookie(csrfToken, env))
	return LoginResponse{
		IdentityResponse: newIdentityResponse(id, env.Files),
		AccessToken:      accessToken,
		CSRFToken:        csrfToken,
	}, nil
}

// HandleRegister creates an account holding the user role.
//
//	POST /api/register
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request RegisterRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Registering user")
	u, err := env.Users.Register(ctx, user.Registration{
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Password:  request.Password,
	})
	switch {
	case errors.Is(err, user.ErrInvalidRegistration):
		env.Logger.DebugContext(ctx, "Invalid registration", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "username must be between 3 and 60 characters", requestID)
		return
	case password.IsWeak(err):
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID) // OK to share the error with client.
		return
	case errors.Is(err, user.ErrUsernameTaken):
		env.Logger.DebugContext(ctx, "Username already taken", slog.String("username", request.Username))
		_ = apiError.EncodeError(w, apiError.UsernameConflict, "username already in use", requestID)
		return
	case err != nil:
		env.Logger.ErrorContext(ctx, "Failed to register user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusCreated, newIdentityResponse(auth.FromUser(u), env.Files)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogin checks the credentials and starts a session.
//
//	POST /api/login
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request LoginRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Authenticating user")
	identity, err := auth.Authenticate(ctx, env.Users, request.Username, request.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		env.Metrics.IncrementLogins(metrics.ResultFailure)
		env.Logger.InfoContext(ctx, "Invalid credentials", slog.String("username", request.Username))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "username or password is incorrect", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to authenticate user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	env.Metrics.IncrementLogins(metrics.ResultSuccess)

	env.Logger.DebugContext(ctx, "Starting session")
	resp, err := startSession(w, env, identity)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to start session", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.EncodeJSON(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogout clears the session cookies.
//
//	POST /api/logout
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	for _, c := range token.ExpiredCookies(env) {
		http.SetCookie(w, c)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetMe returns the identity carried by the access token.
//
//	GET /api/me
func HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	claims, err := token.AccessTokenFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract access token from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	identity, err := auth.FromClaims(claims)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to read identity", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.EncodeJSON(w, http.StatusOK, newIdentityResponse(identity, env.Files)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// loadCurrentUser fetches the account of the authenticated user, writing
// the error response itself when it fails.
func loadCurrentUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return user.User{}, false
	}
	u, found, err := env.Users.GetByID(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return user.User{}, false
	}
	if !found {
		env.Logger.WarnContext(ctx, "token refers to a deleted user")
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return user.User{}, false
	}
	return u, true
}

// saveAndRefresh stores u and reissues the session so the token claims
// match the stored account.
func saveAndRefresh(w http.ResponseWriter, r *http.Request, u user.User) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	err := env.Users.Update(ctx, u)
	if errors.Is(err, user.ErrNotFound) {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	resp, err := startSession(w, env, auth.FromUser(u))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to refresh session", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if err := mJson.EncodeJSON(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleUpdateMe changes the names or the password of the current user.
//
//	PATCH /api/me
func HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request UpdateMeRequest
	if err := mJson.DecodeRequest(w, r, &request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	u, ok := loadCurrentUser(w, r)
	if !ok {
		return
	}

	if request.FirstName != nil {
		u.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		u.LastName = *request.LastName
	}
	if request.Password != nil {
		if !env.Users.VerifyPassword(u, request.CurrentPassword) {
			_ = apiError.EncodeError(w, apiError.InvalidCredentials, "current password is incorrect", requestID)
			return
		}
		if err := password.ValidatePassword(*request.Password); err != nil {
			_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID)
			return
		}
		hash, err := env.Users.HashPassword(*request.Password)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		u.PasswordHash = hash
	}

	saveAndRefresh(w, r, u)
}

// HandleUploadPicture replaces the profile picture of the current user.
//
//	PUT /api/me/picture (multipart field "image")
func HandleUploadPicture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, form.MaxImageBytes+(1<<20))
	image, err := form.ReadImage(r)
	switch {
	case errors.Is(err, form.ErrNoImageUploaded):
		_ = apiError.EncodeError(w, apiError.BadRequest, "no image uploaded", requestID)
		return
	case errors.Is(err, form.ErrUnsupportedMimeType), errors.Is(err, form.ErrImageTooLarge):
		env.Logger.DebugContext(ctx, "rejected image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UnsupportedImage, err.Error(), requestID)
		return
	case err != nil:
		env.Logger.DebugContext(ctx, "failed to read image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid upload", requestID)
		return
	}

	if env.Files == nil {
		env.Logger.ErrorContext(ctx, "no file store configured")
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	u, ok := loadCurrentUser(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "writing profile picture")
	key, err := env.Files.WriteProfilePicture(ctx, u.ID, image.Suffix, image.MimeType, image.Data)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to write profile picture", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if old := u.ProfilePicturePath; old != key && env.Files.Owns(old) {
		if err := env.Files.Delete(ctx, old); err != nil {
			env.Logger.WarnContext(ctx, "failed to delete old profile picture", slog.String("key", old), slog.Any("error", err))
		}
	}
	u.ProfilePicturePath = key

	saveAndRefresh(w, r, u)
}
