// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	apiError "github.com/matt-dz/recipecenter/internal/api/error"
	"github.com/matt-dz/recipecenter/internal/api/requestid"
	"github.com/matt-dz/recipecenter/internal/api/token"
	"github.com/matt-dz/recipecenter/internal/auth"
	"github.com/matt-dz/recipecenter/internal/env"
	rcJwt "github.com/matt-dz/recipecenter/internal/jwt"
	"github.com/matt-dz/recipecenter/internal/log"
	"github.com/matt-dz/recipecenter/internal/role"
)

// RecipeIDParam is the route parameter recipe routes are keyed by.
const RecipeIDParam = "recipeID"

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String(log.RequestIDKey, id)}
			}
			return []slog.Attr{slog.String(log.RequestIDKey, "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context and echoes it back
// in the response headers.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Make().String()
		ctx := log.AppendCtx(r.Context(), slog.String(log.RequestIDKey, requestID))
		ctx = requestid.InjectRequestID(ctx, requestID)
		w.Header().Set(requestid.Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		baseURL := e.Config.HostOrigin

		// In dev mode, allow all origins
		var allowedOrigin string
		if e.IsProd() {
			allowedOrigin = baseURL
		} else if origin != "" {
			allowedOrigin = origin
		}
		if allowedOrigin == "" {
			allowedOrigin = baseURL
		}
		if allowedOrigin == "" {
			e.Logger.WarnContext(r.Context(),
				"host origin not set and no valid origin found; Access-Control-Allow-Origin will be empty")
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+token.CSRFTokenHeader)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// checkCSRF enforces the double submit cookie on state changing requests
// authenticated by cookie.
func checkCSRF(r *http.Request, e *env.Env) error {
	if isSafeMethod(r.Method) {
		return nil
	}
	cookie, err := r.Cookie(token.CSRFTokenName(e))
	if err != nil {
		return ErrMissingCSRFCookie
	}
	header := r.Header.Get(token.CSRFTokenHeader)
	if header == "" {
		return ErrMissingCSRFHeader
	}
	if !token.CSRFMatches(cookie.Value, header) {
		return ErrCSRFTokenMismatch
	}
	return nil
}

// accessToken reads the token from the Authorization header, falling back
// to the access cookie.
func accessToken(r *http.Request, e *env.Env) (raw string, fromCookie bool, err error) {
	raw, ok, err := token.BearerToken(r)
	if ok {
		return raw, false, err
	}
	cookie, err := r.Cookie(token.AccessTokenName(e))
	if err != nil {
		return "", true, ErrMissingToken
	}
	return cookie.Value, true, nil
}

// Authorize validates the access token and requires at least requiredRole.
func Authorize(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			env := env.EnvFromCtx(ctx)
			requestID := requestid.ExtractRequestID(ctx)

			raw, fromCookie, err := accessToken(r, env)
			if err != nil {
				env.Logger.DebugContext(ctx, "unable to get access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}
			if fromCookie {
				if err := checkCSRF(r, env); err != nil {
					env.Logger.WarnContext(ctx, "csrf check failed", slog.Any("error", err))
					_ = apiError.EncodeError(w, apiError.InvalidCSRFToken, "invalid csrf token", requestID)
					return
				}
			}

			secret := env.AppSecret()
			if len(secret) == 0 {
				env.Logger.ErrorContext(ctx, "app secret not configured")
				_ = apiError.EncodeInternalError(w, requestID)
				return
			}

			claims, err := rcJwt.ValidateJWT(raw, env.AppSecretVersion(), secret)
			if errors.Is(err, jwt.ErrTokenExpired) {
				env.Logger.DebugContext(ctx, "access token expired", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
				return
			} else if err != nil {
				env.Logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}

			identity, err := auth.FromClaims(claims)
			if err != nil {
				env.Logger.ErrorContext(ctx, "failed to read identity from token", slog.Any("error", err))
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
				return
			}
			ctx = log.AppendCtx(ctx, slog.Int64(log.UserIDKey, identity.UserID))
			ctx = token.UserIDWithCtx(ctx, identity.UserID)
			ctx = token.AccessTokenWithCtx(ctx, claims)

			userRole := role.ToRole(claims.Role)
			if userRole < requiredRole {
				env.Logger.WarnContext(ctx, "user does not have required role",
					slog.String("user_role", userRole.String()),
					slog.String("required_role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RecipeAccess lets the request through when the user is linked to the
// recipe in the URL or is an admin. It must run after Authorize.
func RecipeAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.ExtractRequestID(ctx)

		recipeID, err := strconv.ParseInt(chi.URLParam(r, RecipeIDParam), 10, 64)
		if err != nil {
			env.Logger.DebugContext(ctx, "invalid recipe id", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
			return
		}
		ctx = log.AppendCtx(ctx, slog.Int64(log.RecipeIDKey, recipeID))

		claims, err := token.AccessTokenFromCtx(ctx)
		if err != nil {
			env.Logger.ErrorContext(ctx, "recipe access checked before authorization", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if role.ToRole(claims.Role) >= role.RoleAdmin {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		userID, err := token.UserIDFromCtx(ctx)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		ok, err := env.Recipes.CanAccess(ctx, userID, recipeID)
		if err != nil {
			env.Logger.ErrorContext(ctx, "failed to check recipe access", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		if !ok {
			env.Logger.WarnContext(ctx, "user is not linked to recipe")
			_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "recipe is not shared with you", requestID)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
