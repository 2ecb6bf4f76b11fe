package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims embeds the registered claim set and carries the identity fields
// the middleware needs without a user lookup.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTIssuer mints and verifies HS256 tokens with a process-wide secret.
// The secret is read-only after construction, so issuance and verification
// are safe to call from concurrent requests.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token whose subject is the user id.
func (i *JWTIssuer) Issue(identity ports.Identity) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: identity.Email,
		Role:  identity.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token. Signature mismatches and expiry both
// surface as errors; callers treat every failure as unauthenticated.
func (i *JWTIssuer) Verify(token string) (ports.Identity, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ports.Identity{}, domain.ErrInvalidCredentials
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return ports.Identity{}, domain.ErrInvalidCredentials
	}

	return ports.Identity{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}
