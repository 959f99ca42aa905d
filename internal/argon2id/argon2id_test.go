package argon2id

import (
	"errors"
	"strings"
	"testing"
)

var testParams = ArgonParams{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  DefaultSaltLength,
	KeyLength:   DefaultKeyLength,
}

func TestEncodeDecode(t *testing.T) {
	salt := []byte("0123456789abcdef")
	encoded := EncodeHashWithSalt("hunter2", testParams, salt)

	if !strings.HasPrefix(encoded, Prefix) {
		t.Fatalf("expected prefix %q, got %q", Prefix, encoded)
	}

	p, gotSalt, hash, err := DecodeHash(encoded)
	if err != nil {
		t.Fatalf("DecodeHash() error = %v", err)
	}
	if *p != testParams {
		t.Errorf("DecodeHash() params = %+v, want %+v", *p, testParams)
	}
	if string(gotSalt) != string(salt) {
		t.Errorf("DecodeHash() salt = %q, want %q", gotSalt, salt)
	}
	if len(hash) != int(testParams.KeyLength) {
		t.Errorf("expected %d byte key, got %d", testParams.KeyLength, len(hash))
	}
}

func TestCompare(t *testing.T) {
	encoded, err := EncodeHash("correct horse", testParams)
	if err != nil {
		t.Fatalf("EncodeHash() error = %v", err)
	}

	ok, err := Compare(encoded, "correct horse")
	if err != nil || !ok {
		t.Errorf("Compare() = %v, %v; want true, nil", ok, err)
	}

	ok, err = Compare(encoded, "battery staple")
	if err != nil || ok {
		t.Errorf("Compare() = %v, %v; want false, nil", ok, err)
	}
}

func TestDecodeHash_Invalid(t *testing.T) {
	tests := []string{
		"",
		"plaintext",
		"$2a$10$abcdefghijklmnopqrstuv",
		"$argon2id$v=19$m=bad$salt$hash",
	}

	for _, in := range tests {
		if _, _, _, err := DecodeHash(in); !errors.Is(err, ErrInvalidHash) {
			t.Errorf("DecodeHash(%q) error = %v, want %v", in, err, ErrInvalidHash)
		}
	}

	if _, _, _, err := DecodeHash("$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA"); !errors.Is(err, ErrIncompatibleVersion) {
		t.Errorf("expected ErrIncompatibleVersion, got %v", err)
	}
}

func TestDefaultParams(t *testing.T) {
	if DefaultParams.Parallelism != DefaultParallelism {
		t.Errorf("DefaultParams.Parallelism = %d, want %d", DefaultParams.Parallelism, DefaultParallelism)
	}
}
