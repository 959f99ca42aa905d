// Package role contains utilities for user roles.
package role

import (
	"math"
)

// Labels stored on user accounts.
const (
	LabelAdmin = "admin"
	LabelUser  = "user"
)

type Role int

const (
	RoleAdmin   Role = 200
	RoleUser    Role = 100
	RoleUnknown Role = math.MinInt
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return LabelAdmin
	case RoleUser:
		return LabelUser
	default:
		return "unknown"
	}
}

func ToRole(role string) Role {
	switch role {
	case LabelAdmin:
		return RoleAdmin
	case LabelUser:
		return RoleUser
	default:
		return RoleUnknown
	}
}

// FromLabels returns the highest role among labels.
func FromLabels(labels []string) Role {
	highest := RoleUnknown
	for _, l := range labels {
		if r := ToRole(l); r > highest {
			highest = r
		}
	}
	return highest
}
