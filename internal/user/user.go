// Package user stores accounts and checks their credentials.
package user

import (
	"errors"
	"slices"
	"strings"

	"github.com/matt-dz/recipecenter/internal/role"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrMissingPasswordHash = errors.New("password hash is required")
	ErrMissingUsername     = errors.New("username is required")
	ErrInvalidRegistration = errors.New("invalid registration")
)

type User struct {
	ID                 int64    `json:"id"`
	Username           string   `json:"username"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	PasswordHash       string   `json:"-"`
	Roles              []string `json:"roles"`
	ProfilePicturePath string   `json:"profile_picture_path"`
}

// DisplayName joins the first and last name, falling back to the username.
func (u User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.Username
	}
	return name
}

func (u User) HasRole(r string) bool {
	return slices.Contains(u.Roles, r)
}

// Role returns the highest role held by the user.
func (u User) Role() role.Role {
	return role.FromLabels(u.Roles)
}

type Registration struct {
	Username  string `json:"username" validate:"required,min=3,max=60"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Password  string `json:"password" validate:"required"`
}
