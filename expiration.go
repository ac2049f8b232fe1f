package goBearer

import "time"

const (
	// PlayerTTL is how long a player token stays valid.
	PlayerTTL = 24 * time.Hour
	// BrandTTL is how long a brand token stays valid.
	BrandTTL = time.Hour
	// AdminTTL is how long an admin token stays valid.
	AdminTTL = 24 * time.Hour
)

// TTL returns the fixed lifetime for kind, or zero for an unknown kind.
func TTL(kind TokenKind) time.Duration {
	switch kind {
	case KindPlayer:
		return PlayerTTL
	case KindBrand:
		return BrandTTL
	case KindAdmin:
		return AdminTTL
	default:
		return 0
	}
}

// ExpirationPolicy decides whether a token is past its TTL.
//
// There is no revocation: a token stays valid for its full TTL whatever happens to
// the session it was issued for.
type ExpirationPolicy struct {
	now func() time.Time
}

// NewExpirationPolicy returns a policy reading the given clock; nil means time.Now.
func NewExpirationPolicy(now func() time.Time) *ExpirationPolicy {
	if now == nil {
		now = time.Now
	}
	return &ExpirationPolicy{now: now}
}

// Now returns the current instant in UTC.
func (p *ExpirationPolicy) Now() time.Time {
	return p.now().UTC()
}

// TTL returns the lifetime for kind.
func (p *ExpirationPolicy) TTL(kind TokenKind) time.Duration {
	return TTL(kind)
}

// ExpiresAt returns the first instant at which a token issued at createdOn is expired.
func (p *ExpirationPolicy) ExpiresAt(kind TokenKind, createdOn time.Time) time.Time {
	return createdOn.UTC().Add(TTL(kind))
}

// IsExpired reports now >= createdOn + TTL(kind). Unknown kinds are always expired.
func (p *ExpirationPolicy) IsExpired(kind TokenKind, createdOn time.Time) bool {
	return !p.Now().Before(p.ExpiresAt(kind, createdOn))
}
