package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Abcd1234!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Abcd1234!" {
		t.Fatalf("hash equals plaintext")
	}
	if !Verify("Abcd1234!", hash) {
		t.Fatalf("Verify rejected correct password")
	}
	if Verify("Abcd1234?", hash) {
		t.Fatalf("Verify accepted wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, _ := Hash("Abcd1234!")
	h2, _ := Hash("Abcd1234!")
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are identical")
	}
}

func TestCheckStrength(t *testing.T) {
	cases := []struct {
		password string
		score    int
		met      bool
	}{
		{"", 0, false},
		{"abc", 20, false},
		{"abcdefgh", 40, false},
		{"Abcdefg1", 80, false},
		{"Abcd1234!", 100, true},
	}

	for _, tc := range cases {
		score, req := CheckStrength(tc.password)
		if score != tc.score {
			t.Errorf("CheckStrength(%q) score = %d, want %d", tc.password, score, tc.score)
		}
		if req.Met() != tc.met {
			t.Errorf("CheckStrength(%q) met = %v, want %v", tc.password, req.Met(), tc.met)
		}
	}
}

func TestGenerateTemporary(t *testing.T) {
	pw, err := GenerateTemporary(12)
	if err != nil {
		t.Fatalf("GenerateTemporary returned error: %v", err)
	}
	if len(pw) != 12 {
		t.Fatalf("expected length 12, got %d", len(pw))
	}

	score, req := CheckStrength(pw)
	if !req.Met() {
		t.Fatalf("temporary password %q misses a character class (score %d)", pw, score)
	}
	if !strings.ContainsAny(pw, specialChars) {
		t.Fatalf("temporary password %q has no special char", pw)
	}
}

func TestGenerateTemporary_MinimumLength(t *testing.T) {
	pw, err := GenerateTemporary(2)
	if err != nil {
		t.Fatalf("GenerateTemporary returned error: %v", err)
	}
	if len(pw) < 8 {
		t.Fatalf("expected length raised to 8, got %d", len(pw))
	}
}
