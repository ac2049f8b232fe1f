package goBearer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLPerKind(t *testing.T) {
	assert.Equal(t, 24*time.Hour, TTL(KindPlayer))
	assert.Equal(t, time.Hour, TTL(KindBrand))
	assert.Equal(t, 24*time.Hour, TTL(KindAdmin))
	assert.Zero(t, TTL(TokenKind(0)))
	assert.Zero(t, TTL(TokenKind(9)))
}

func TestExpirationPolicyBoundary(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)
	p := NewExpirationPolicy(func() time.Time { return now })

	for _, kind := range []TokenKind{KindPlayer, KindBrand, KindAdmin} {
		ttl := p.TTL(kind)
		assert.False(t, p.IsExpired(kind, now), "%s issued now", kind)
		assert.False(t, p.IsExpired(kind, now.Add(-ttl+time.Nanosecond)), "%s just inside", kind)
		assert.True(t, p.IsExpired(kind, now.Add(-ttl)), "%s at boundary", kind)
		assert.True(t, p.IsExpired(kind, now.Add(-ttl-time.Hour)), "%s long past", kind)
	}
}

func TestExpirationPolicyUnknownKindAlwaysExpired(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)
	p := NewExpirationPolicy(func() time.Time { return now })

	assert.True(t, p.IsExpired(TokenKind(0), now))
	assert.True(t, p.IsExpired(TokenKind(42), now.Add(time.Minute*-1)))
}

func TestExpirationPolicyNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2026, 1, 10, 13, 30, 0, 0, loc)
	p := NewExpirationPolicy(func() time.Time { return local })

	assert.Equal(t, time.UTC, p.Now().Location())
	assert.True(t, p.Now().Equal(local))

	at := p.ExpiresAt(KindBrand, local)
	assert.Equal(t, time.UTC, at.Location())
	assert.Equal(t, time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC), at)
}

func TestExpirationPolicyDefaultClock(t *testing.T) {
	p := NewExpirationPolicy(nil)
	assert.WithinDuration(t, time.Now(), p.Now(), time.Second)
}
