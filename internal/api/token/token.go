// Package token contains utilities for http tokens.
package token

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/jwt"
)

const (
	AuthorizationHeader = "Authorization"
	CSRFTokenHeader     = "X-CSRF-Token"
)

const (
	csrfTokenBytes      = 32
	accessTokenLifetime = 60 * 30 // 30 minutes
)

var (
	ErrMissingSecret     = errors.New("app secret is not configured")
	ErrNoUserID          = errors.New("no user id in context")
	ErrNoAccessToken     = errors.New("no access token in context")
	ErrMalformedAuthzHdr = errors.New("malformed authorization header")
)

type userIDKeyType struct{}
type accessTokenKeyType struct{}

var (
	userIDKey      userIDKeyType
	accessTokenKey accessTokenKeyType
)

func AccessTokenName(env *env.Env) string {
	if env.IsProd() {
		return "__Host-Http-access"
	}
	return "access"
}

func CSRFTokenName(env *env.Env) string {
	if env.IsProd() {
		return "__Host-csrf"
	}
	return "csrf"
}

func CreateToken(numbytes uint) (string, error) {
	token := make([]byte, numbytes)
	if _, err := rand.Reader.Read(token); err != nil {
		return "", fmt.Errorf("creating token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(token), nil
}

func NewCSRFToken() (string, error) {
	return CreateToken(csrfTokenBytes)
}

// CSRFMatches compares the double submitted CSRF values.
func CSRFMatches(cookie, header string) bool {
	if cookie == "" || header == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) == 1
}

func NewAccessToken(params jwt.JWTParams, env *env.Env) (string, error) {
	secret := env.AppSecret()
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	token, err := jwt.GenerateJWT(params, secret, env.AppSecretVersion())
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
// ok is false when the header is absent.
func BearerToken(r *http.Request) (token string, ok bool, err error) {
	header := r.Header.Get(AuthorizationHeader)
	if header == "" {
		return "", false, nil
	}
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(value) == "" {
		return "", true, ErrMalformedAuthzHdr
	}
	return strings.TrimSpace(value), true, nil
}

func NewAccessTokenCookie(token string, env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenName(env),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   accessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.IsProd(),
	}
}

// NewCSRFCookie is readable by scripts so they can echo it in CSRFTokenHeader.
func NewCSRFCookie(token string, env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     CSRFTokenName(env),
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		MaxAge:   accessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.IsProd(),
	}
}

// ExpiredCookies clear the session cookies on logout.
func ExpiredCookies(env *env.Env) []*http.Cookie {
	access := NewAccessTokenCookie("", env)
	access.MaxAge = -1
	csrf := NewCSRFCookie("", env)
	csrf.MaxAge = -1
	return []*http.Cookie{access, csrf}
}

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromCtx(ctx context.Context) (int64, error) {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id, nil
	}
	return 0, ErrNoUserID
}

func AccessTokenWithCtx(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, accessTokenKey, claims)
}

func AccessTokenFromCtx(ctx context.Context) (*jwt.Claims, error) {
	if claims, ok := ctx.Value(accessTokenKey).(*jwt.Claims); ok && claims != nil {
		return claims, nil
	}
	return nil, ErrNoAccessToken
}
