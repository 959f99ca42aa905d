package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/matt-dz/recipecenter/internal/argon2id"
)

var ErrUnknownHashFormat = errors.New("unknown password hash format")

// Hasher turns a raw password into an encoded hash and checks a raw
// password against one. Implementations are safe for concurrent use.
type Hasher interface {
	Hash(raw string) (string, error)
	Verify(encoded, raw string) (bool, error)
}

type Argon2id struct {
	Params argon2id.ArgonParams
}

func NewArgon2id() Argon2id {
	return Argon2id{Params: argon2id.DefaultParams}
}

func (a Argon2id) Hash(raw string) (string, error) {
	encoded, err := argon2id.EncodeHash(raw, a.Params)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return encoded, nil
}

func (a Argon2id) Verify(encoded, raw string) (bool, error) {
	return argon2id.Compare(encoded, raw)
}

type Bcrypt struct {
	Cost int
}

func NewBcrypt() Bcrypt {
	return Bcrypt{Cost: bcrypt.DefaultCost}
}

func (b Bcrypt) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), b.Cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (b Bcrypt) Verify(encoded, raw string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Multi hashes with argon2id and verifies argon2id or bcrypt hashes,
// picking the algorithm from the hash prefix.
type Multi struct {
	Argon2id Argon2id
	Bcrypt   Bcrypt
}

func NewMulti() Multi {
	return Multi{
		Argon2id: NewArgon2id(),
		Bcrypt:   NewBcrypt(),
	}
}

func (m Multi) Hash(raw string) (string, error) {
	return m.Argon2id.Hash(raw)
}

func (m Multi) Verify(encoded, raw string) (bool, error) {
	if strings.HasPrefix(encoded, argon2id.Prefix) {
		return m.Argon2id.Verify(encoded, raw)
	}
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(encoded, prefix) {
			return m.Bcrypt.Verify(encoded, raw)
		}
	}
	return false, ErrUnknownHashFormat
}
