// Package jwt provides functions for generating and validating JWTs
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTDuration = 30 * time.Minute
	DefaultKID  = "1"
)

var ErrInvalidKID = errors.New("missing or invalid kid")

type JWTParams struct {
	UserID   string
	Role     string
	Username string
	Name     string
	Picture  string
	Roles    []string
}

// Claims carries the identity of the signed in user.
type Claims struct {
	Role     string   `json:"role"`
	Username string   `json:"username"`
	Name     string   `json:"name,omitempty"`
	Picture  string   `json:"picture,omitempty"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:     params.Role,
		Username: params.Username,
		Name:     params.Name,
		Picture:  params.Picture,
		Roles:    params.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   params.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

func ValidateJWT(rawToken, version string, secret []byte) (*Claims, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, ErrInvalidKID
		}
		if kidVal != version {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKID, kidVal)
		}
		return secret, nil
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(rawToken, &claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}
