package service

import (
	"testing"
	"time"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)

	token, err := issuer.Issue(ports.Identity{UserID: 42, Email: "alice@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	identity, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.UserID != 42 {
		t.Fatalf("unexpected user id: %d", identity.UserID)
	}
	if identity.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", identity.Email)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
}

func TestJWTIssuer_WrongSecret(t *testing.T) {
	token, err := NewJWTIssuer("secret-a", time.Hour).Issue(ports.Identity{UserID: 1})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewJWTIssuer("secret-b", time.Hour).Verify(token); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestJWTIssuer_Expired(t *testing.T) {
	issuer := NewJWTIssuer("secret", -time.Minute)
	// NewJWTIssuer replaces non-positive TTLs, so build one directly.
	issuer.ttl = -time.Minute

	token, err := issuer.Issue(ports.Identity{UserID: 7})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := issuer.Verify(token); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for expired token, got %v", err)
	}
}

func TestJWTIssuer_Garbage(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := issuer.Verify(token); err != domain.ErrInvalidCredentials {
			t.Fatalf("token %q: expected ErrInvalidCredentials, got %v", token, err)
		}
	}
}

func TestJWTIssuer_DefaultTTL(t *testing.T) {
	issuer := NewJWTIssuer("secret", 0)
	if issuer.TTL() != defaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTokenTTL, issuer.TTL())
	}
}
