package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-dz/recipecenter/internal/config"
	"github.com/matt-dz/recipecenter/internal/env"
	"github.com/matt-dz/recipecenter/internal/jwt"
)

func testEnv(mode string) *env.Env {
	secret := config.AppSecretValue("test-secret-32-bytes-long-123456")
	e := env.Null()
	e.Config.Env = mode
	e.Config.AppSecret = config.AppSecret{Value: &secret, Version: "1"}
	return e
}

func TestCookieNames(t *testing.T) {
	dev, prod := testEnv(config.EnvDev), testEnv(config.EnvProd)
	if AccessTokenName(dev) != "access" || CSRFTokenName(dev) != "csrf" {
		t.Error("unexpected dev cookie names")
	}
	if AccessTokenName(prod) != "__Host-Http-access" || CSRFTokenName(prod) != "__Host-csrf" {
		t.Error("unexpected prod cookie names")
	}
	if !NewAccessTokenCookie("x", prod).Secure || NewAccessTokenCookie("x", dev).Secure {
		t.Error("Secure should follow the environment")
	}
	if !NewAccessTokenCookie("x", dev).HttpOnly || NewCSRFCookie("x", dev).HttpOnly {
		t.Error("access cookie must be HttpOnly and csrf cookie readable")
	}
}

func TestNewAccessToken(t *testing.T) {
	e := testEnv(config.EnvDev)
	raw, err := NewAccessToken(jwt.JWTParams{UserID: "9", Role: "user"}, e)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	claims, err := jwt.ValidateJWT(raw, "1", e.AppSecret())
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.Subject != "9" {
		t.Errorf("Subject = %q", claims.Subject)
	}

	if _, err := NewAccessToken(jwt.JWTParams{UserID: "9"}, env.Null()); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected %v, got %v", ErrMissingSecret, err)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantOK  bool
		wantErr bool
	}{
		{name: "absent"},
		{name: "bearer", header: "Bearer abc", want: "abc", wantOK: true},
		{name: "lowercase scheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "missing scheme", header: "abc", wantOK: true, wantErr: true},
		{name: "basic", header: "Basic abc", wantOK: true, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(AuthorizationHeader, tt.header)
			}
			got, ok, err := BearerToken(r)
			if (err != nil) != tt.wantErr || ok != tt.wantOK || got != tt.want {
				t.Errorf("BearerToken() = %q, %v, %v", got, ok, err)
			}
		})
	}
}

func TestCSRFMatches(t *testing.T) {
	a, err := NewCSRFToken()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewCSRFToken()
	if !CSRFMatches(a, a) {
		t.Error("identical tokens should match")
	}
	if CSRFMatches(a, b) || CSRFMatches("", "") || CSRFMatches(a, "") {
		t.Error("unexpected match")
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if _, err := UserIDFromCtx(ctx); !errors.Is(err, ErrNoUserID) {
		t.Errorf("expected %v, got %v", ErrNoUserID, err)
	}
	if _, err := AccessTokenFromCtx(ctx); !errors.Is(err, ErrNoAccessToken) {
		t.Errorf("expected %v, got %v", ErrNoAccessToken, err)
	}

	ctx = UserIDWithCtx(ctx, 5)
	ctx = AccessTokenWithCtx(ctx, &jwt.Claims{Username: "chef"})
	if id, _ := UserIDFromCtx(ctx); id != 5 {
		t.Errorf("user id = %d", id)
	}
	if c, _ := AccessTokenFromCtx(ctx); c.Username != "chef" {
		t.Errorf("claims = %+v", c)
	}
}
