package auth

import (
	"testing"
)

func TestHashPassword_VerifiesWithOriginal(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("secret123", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if a == b {
		t.Fatalf("two digests of the same password must differ, both were %q", a)
	}
	if !CheckPassword("same-password", a) || !CheckPassword("same-password", b) {
		t.Fatalf("both digests must still verify")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if CheckPassword("wrong", digest) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "plaintext", "$2a$zz$garbage"} {
		if CheckPassword("anything", digest) {
			t.Fatalf("expected false for malformed digest %q", digest)
		}
	}
}
