package ports

import "time"

// Identity is the resolved claim set attached to authenticated requests.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// TokenIssuer mints and verifies signed bearer tokens. Verification is purely
// cryptographic; no server-side session state is kept.
type TokenIssuer interface {
	Issue(identity Identity) (string, error)
	Verify(token string) (Identity, error)
	TTL() time.Duration
}
