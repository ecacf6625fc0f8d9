package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored verbatim")
	}
	if !CheckPassword(hash, "secret123") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken(42, "jane@example.com", "user", "test-secret")
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := ParseToken(tok, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("uid = %d, want 42", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("role = %q", claims.Role)
	}

	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

// Clients decode the payload for session bookkeeping without the secret.
func TestTokenPayloadDecodable(t *testing.T) {
	tok, err := MakeToken(7, "bob@example.com", "admin", "test-secret")
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	var body struct {
		UID   int64  `json:"uid"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if body.UID != 7 || body.Email != "bob@example.com" {
		t.Errorf("payload = %+v", body)
	}
}

func TestRefreshTokenHash(t *testing.T) {
	raw, hash, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if raw == "" || hash == "" {
		t.Fatal("empty token")
	}
	if HashRefreshToken(raw) != hash {
		t.Fatal("hash mismatch")
	}

	raw2, _, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if raw == raw2 {
		t.Fatal("tokens not unique")
	}
}
