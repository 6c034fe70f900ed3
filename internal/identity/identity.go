// internal/identity/identity.go
package identity

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoIdentity is returned when no current player identity is available.
// Callers fall back to the anonymous identity rather than surfacing this.
var ErrNoIdentity = errors.New("no current identity")

// Provider resolves the current player's identity. The platform behind it may
// be slow or flaky, so results should be cached via Cached.
type Provider interface {
	CurrentIdentity(ctx context.Context) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (string, error)

func (f ProviderFunc) CurrentIdentity(ctx context.Context) (string, error) {
	return f(ctx)
}

// Static returns a provider that always yields the given identity. Used in
// tests and local development.
func Static(identity string) Provider {
	return ProviderFunc(func(context.Context) (string, error) {
		if identity == "" {
			return "", ErrNoIdentity
		}
		return identity, nil
	})
}

// Cached decorates a Provider with a bounded-TTL cache so repeated lookups
// within a session do not hit the underlying platform. Failures are not
// cached; the next call retries.
type Cached struct {
	inner Provider
	ttl   time.Duration

	mu      sync.Mutex
	value   string
	fetched time.Time

	now func() time.Time // for tests
}

// NewCached wraps inner with a cache holding results for ttl.
func NewCached(inner Provider, ttl time.Duration) *Cached {
	return &Cached{inner: inner, ttl: ttl, now: time.Now}
}

func (c *Cached) CurrentIdentity(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value != "" && c.now().Sub(c.fetched) < c.ttl {
		return c.value, nil
	}
	identity, err := c.inner.CurrentIdentity(ctx)
	if err != nil {
		return "", err
	}
	c.value = identity
	c.fetched = c.now()
	return identity, nil
}
