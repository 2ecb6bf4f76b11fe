// Package password wraps bcrypt hashing and offers strength scoring plus
// temporary-password generation for account recovery flows.
package password

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

// Hash returns the bcrypt hash of plaintext. The salt and cost are embedded
// in the returned string.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext re-hashes to hash.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Requirements lists which character-class checks a password satisfies.
type Requirements struct {
	Length    bool `json:"length"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

// Met reports whether every requirement is satisfied.
func (r Requirements) Met() bool {
	return r.Length && r.Lowercase && r.Uppercase && r.Number && r.Special
}

// CheckStrength scores a password 0-100, 20 points per satisfied requirement.
func CheckStrength(plaintext string) (int, Requirements) {
	req := Requirements{Length: len(plaintext) >= 8}
	for _, r := range plaintext {
		switch {
		case unicode.IsLower(r):
			req.Lowercase = true
		case unicode.IsUpper(r):
			req.Uppercase = true
		case unicode.IsDigit(r):
			req.Number = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			req.Special = true
		}
	}

	score := 0
	for _, ok := range []bool{req.Length, req.Lowercase, req.Uppercase, req.Number, req.Special} {
		if ok {
			score += 20
		}
	}
	return score, req
}

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*"
)

// GenerateTemporary returns a random password of the given length containing
// at least one character from each class. Lengths below 8 are raised to 8.
func GenerateTemporary(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	all := lowerChars + upperChars + digitChars + specialChars
	out := make([]byte, 0, length)

	for _, set := range []string{lowerChars, upperChars, digitChars, specialChars} {
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Shuffle so the mandatory characters are not always at the front.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}

	return string(out), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}
