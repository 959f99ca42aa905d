package password

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/matt-dz/recipecenter/internal/argon2id"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"too short", "Ab1!", ErrTooShort},
		{"no uppercase", "abcdefgh1!xyz", ErrNoUppercase},
		{"no lowercase", "ABCDEFGH1!XYZ", ErrNoLowercase},
		{"no digit", "Abcdefghij!xyz", ErrNoDigit},
		{"no special", "Abcdefghij1xyz", ErrNoSpecial},
		{"strong", "Tr0ub4dor&3-Horse-Staple", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePassword(tt.password); !errors.Is(err, tt.want) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.want)
			}
		})
	}
}

func fastMulti() Multi {
	return Multi{
		Argon2id: Argon2id{Params: argon2id.ArgonParams{
			Memory:      8 * 1024,
			Iterations:  1,
			Parallelism: 1,
			SaltLength:  16,
			KeyLength:   32,
		}},
		Bcrypt: Bcrypt{Cost: bcrypt.MinCost},
	}
}

func TestMulti(t *testing.T) {
	m := fastMulti()

	argonHash, err := m.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	bcryptHash, err := m.Bcrypt.Hash("s3cret")
	if err != nil {
		t.Fatalf("Bcrypt.Hash() error = %v", err)
	}

	tests := []struct {
		name    string
		encoded string
		raw     string
		want    bool
		wantErr error
	}{
		{"argon2id match", argonHash, "s3cret", true, nil},
		{"argon2id mismatch", argonHash, "wrong", false, nil},
		{"bcrypt match", bcryptHash, "s3cret", true, nil},
		{"bcrypt mismatch", bcryptHash, "wrong", false, nil},
		{"unknown format", "plaintext", "plaintext", false, ErrUnknownHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Verify(tt.encoded, tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Verify() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	m := fastMulti()

	a, err := m.Hash("same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Hash("same")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestIsWeak(t *testing.T) {
	if !IsWeak(ValidatePassword("short")) {
		t.Error("expected short password to be weak")
	}
	if !IsWeak(fmt.Errorf("registering: %w", ErrNoDigit)) {
		t.Error("expected wrapped error to be weak")
	}
	if IsWeak(errors.New("connection refused")) || IsWeak(nil) {
		t.Error("unexpected weak match")
	}
}
