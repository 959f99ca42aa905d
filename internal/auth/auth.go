// Package auth checks credentials and describes the signed in user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-dz/recipecenter/internal/jwt"
	"github.com/matt-dz/recipecenter/internal/role"
	"github.com/matt-dz/recipecenter/internal/user"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password so callers cannot tell them apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (user.User, bool, error)
	VerifyPassword(u user.User, raw string) bool
}

type Identity struct {
	UserID             int64    `json:"user_id"`
	Username           string   `json:"username"`
	DisplayName        string   `json:"display_name"`
	ProfilePicturePath string   `json:"profile_picture_path"`
	Roles              []string `json:"roles"`
}

// Role returns the highest role of the identity.
func (i Identity) Role() role.Role {
	return role.FromLabels(i.Roles)
}

func FromUser(u user.User) Identity {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return Identity{
		UserID:             u.ID,
		Username:           u.Username,
		DisplayName:        u.DisplayName(),
		ProfilePicturePath: u.ProfilePicturePath,
		Roles:              roles,
	}
}

// TokenParams are the access token claims for the identity.
func (i Identity) TokenParams() jwt.JWTParams {
	return jwt.JWTParams{
		UserID:   strconv.FormatInt(i.UserID, 10),
		Role:     i.Role().String(),
		Username: i.Username,
		Name:     i.DisplayName,
		Picture:  i.ProfilePicturePath,
		Roles:    i.Roles,
	}
}

// FromClaims rebuilds the identity carried by an access token.
func FromClaims(c *jwt.Claims) (Identity, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("parsing subject %q: %w", c.Subject, err)
	}
	roles := c.Roles
	if roles == nil {
		roles = []string{}
	}
	return Identity{
		UserID:             id,
		Username:           c.Username,
		DisplayName:        c.Name,
		ProfilePicturePath: c.Picture,
		Roles:              roles,
	}, nil
}

func Authenticate(ctx context.Context, users UserFinder, username, password string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	u, found, err := users.GetByUsername(ctx, username)
	if err != nil {
		return Identity{}, fmt.Errorf("getting user: %w", err)
	}
	if !found || !users.VerifyPassword(u, password) {
		return Identity{}, ErrInvalidCredentials
	}

	return FromUser(u), nil
}
