package broker

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// CachingConfig configures the caching broker.
type CachingConfig struct {
	// FallbackTTL is the cache lifetime for tokens whose expiry cannot
	// be read from the token itself.
	// Default: 5 minutes
	FallbackTTL time.Duration

	// ExpirySkew is subtracted from a token's expiry so it is refreshed
	// before it actually lapses.
	// Default: 30 seconds
	ExpirySkew time.Duration
}

// CachingBroker wraps a TokenBroker with per-destination token caching.
// Concurrent fetches for the same destination are deduplicated, expiry is
// read from the token's exp claim when it parses as a JWT, and a refresh
// failure falls back to the last good token while it is still usable.
type CachingBroker struct {
	config CachingConfig
	inner  TokenBroker

	mu       sync.RWMutex
	tokens   map[string]AccessToken
	lastGood map[string]AccessToken
	sfGroup  singleflight.Group
}

// NewCachingBroker creates a caching broker in front of inner.
func NewCachingBroker(inner TokenBroker, config CachingConfig) *CachingBroker {
	// Apply defaults
	if config.FallbackTTL <= 0 {
		config.FallbackTTL = 5 * time.Minute
	}
	if config.ExpirySkew <= 0 {
		config.ExpirySkew = 30 * time.Second
	}

	return &CachingBroker{
		config:   config,
		inner:    inner,
		tokens:   make(map[string]AccessToken),
		lastGood: make(map[string]AccessToken),
	}
}

// Token returns a cached token for the destination, fetching through the
// inner broker when the cache is cold or expired.
func (b *CachingBroker) Token(ctx context.Context, destination, client string) (AccessToken, error) {
	key := destination + "\x00" + client

	b.mu.RLock()
	tok, ok := b.tokens[key]
	b.mu.RUnlock()
	if ok && !tok.Expired(time.Now()) {
		return tok, nil
	}

	// Deduplicate concurrent fetches for the same destination/client.
	v, err, _ := b.sfGroup.Do(key, func() (any, error) {
		fetched, err := b.inner.Token(ctx, destination, client)
		if err != nil {
			return AccessToken{}, err
		}
		fetched = b.withExpiry(fetched)

		b.mu.Lock()
		b.tokens[key] = fetched
		b.lastGood[key] = fetched
		b.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		// On fetch failure fall back to the last good token if it has
		// not lapsed yet.
		b.mu.RLock()
		last, ok := b.lastGood[key]
		b.mu.RUnlock()
		if ok && !last.Expired(time.Now()) {
			return last, nil
		}
		return AccessToken{}, err
	}

	return v.(AccessToken), nil
}

// Invalidate drops any cached token for the destination/client pair.
func (b *CachingBroker) Invalidate(destination, client string) {
	key := destination + "\x00" + client
	b.mu.Lock()
	delete(b.tokens, key)
	b.mu.Unlock()
}

// withExpiry fills in the token's expiry: the broker-reported value wins,
// then the token's own exp claim, then the fallback TTL.
func (b *CachingBroker) withExpiry(tok AccessToken) AccessToken {
	if !tok.ExpiresAt.IsZero() {
		tok.ExpiresAt = tok.ExpiresAt.Add(-b.config.ExpirySkew)
		return tok
	}
	if exp, ok := tokenExpiry(tok.Value); ok {
		tok.ExpiresAt = exp.Add(-b.config.ExpirySkew)
		return tok
	}
	tok.ExpiresAt = time.Now().Add(b.config.FallbackTTL)
	return tok
}

// tokenExpiry reads the exp claim from a JWT without verifying it. This
// is a cache-lifetime hint only, never a trust decision.
func tokenExpiry(raw string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Ensure CachingBroker implements TokenBroker
var _ TokenBroker = (*CachingBroker)(nil)
