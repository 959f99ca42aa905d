package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret-32-bytes-long-123456")

func TestGenerateAndValidate(t *testing.T) {
	raw, err := GenerateJWT(JWTParams{
		UserID:   "42",
		Role:     "admin",
		Username: "chef",
		Name:     "Head Chef",
		Roles:    []string{"admin", "user"},
	}, testSecret, DefaultKID)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(raw, DefaultKID, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "42")
	}
	if claims.Role != "admin" || claims.Username != "chef" || claims.Name != "Head Chef" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if len(claims.Roles) != 2 {
		t.Errorf("Roles = %v", claims.Roles)
	}
}

func TestValidateJWT_Errors(t *testing.T) {
	valid, err := GenerateJWT(JWTParams{UserID: "1", Role: "user"}, testSecret, DefaultKID)
	if err != nil {
		t.Fatal(err)
	}

	expiredClaims := Claims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims)
	expiredToken.Header["kid"] = DefaultKID
	expired, err := expiredToken.SignedString(testSecret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		raw     string
		version string
		secret  []byte
		wantErr error
	}{
		{name: "wrong version", raw: valid, version: "2", secret: testSecret, wantErr: ErrInvalidKID},
		{name: "wrong secret", raw: valid, version: DefaultKID, secret: []byte("another-secret-of-32-bytes-00000"), wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "expired", raw: expired, version: DefaultKID, secret: testSecret, wantErr: jwt.ErrTokenExpired},
		{name: "garbage", raw: "not.a.token", version: DefaultKID, secret: testSecret, wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.raw, tt.version, tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateJWT() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
