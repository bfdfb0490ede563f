package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !CheckPassword("secret123", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("secret124", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !CheckPassword("same", h1) || !CheckPassword("same", h2) {
		t.Fatalf("both salted hashes must verify")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if CheckPassword("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}
