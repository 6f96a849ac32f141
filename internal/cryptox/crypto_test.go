package cryptox

import (
	"encoding/hex"
	"testing"
)

func TestHashPassword_Deterministic(t *testing.T) {
	h1 := HashPassword("secret-password")
	h2 := HashPassword("secret-password")

	if h1 != h2 {
		t.Errorf("expected same result for same inputs, got different")
	}
	if _, err := hex.DecodeString(h1); err != nil {
		t.Errorf("hash is not valid hex: %v", err)
	}
}

func TestHashPassword_DifferentInputs(t *testing.T) {
	pairs := [][2]string{
		{"s3cret", "s3cret2"},
		{"a", "b"},
		{"password", "Password"},
		{"", " "},
		{"correct horse", "battery staple"},
	}

	for _, p := range pairs {
		if HashPassword(p[0]) == HashPassword(p[1]) {
			t.Errorf("expected different hashes for %q and %q", p[0], p[1])
		}
	}
}

func TestHashPassword_EmptyInput(t *testing.T) {
	h := HashPassword("")
	if h == "" {
		t.Errorf("expected non-empty hash for empty password")
	}
	if h != HashPassword("") {
		t.Errorf("expected deterministic hash for empty password")
	}
}

func TestHashPassword_NeverEchoesPlaintext(t *testing.T) {
	const pw = "s3cret"
	if HashPassword(pw) == pw {
		t.Errorf("hash must not equal the plaintext")
	}
}

func TestVerifyPassword(t *testing.T) {
	stored := HashPassword("s3cret")

	if !VerifyPassword("s3cret", stored) {
		t.Errorf("expected match for correct password")
	}
	if VerifyPassword("wrong", stored) {
		t.Errorf("expected mismatch for wrong password")
	}
	if VerifyPassword("s3cret", "") {
		t.Errorf("expected mismatch for empty stored hash")
	}
}
