// internal/identity/token.go
package identity

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenAuthority signs and verifies identity tokens. The embedding platform
// hands each view a token asserting who the player is; the host never trusts
// a bare identity string off the wire.
type TokenAuthority struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	expire     time.Duration
}

// NewTokenAuthority generates a fresh ed25519 key pair. Tokens signed by one
// process restart are not valid in the next, which is acceptable for
// session-scoped identities. expire <= 0 issues tokens without expiry.
func NewTokenAuthority(expire time.Duration) (*TokenAuthority, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key pair: %w", err)
	}
	return &TokenAuthority{privateKey: priv, publicKey: pub, expire: expire}, nil
}

// NewTokenAuthorityFromPath loads an ed25519 key pair from disk, for
// deployments where tokens must survive restarts.
func NewTokenAuthorityFromPath(privatePath, publicPath string, expire time.Duration) (*TokenAuthority, error) {
	privateKeyData, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}
	publicKeyData, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}
	return &TokenAuthority{
		privateKey: ed25519.PrivateKey(privateKeyData),
		publicKey:  ed25519.PublicKey(publicKeyData),
		expire:     expire,
	}, nil
}

// Issue creates a signed token with "sub" = identity.
func (a *TokenAuthority) Issue(identity string) (string, error) {
	claims := jwt.MapClaims{
		"sub": identity,
	}
	if a.expire > 0 {
		claims["exp"] = time.Now().Add(a.expire).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(a.privateKey)
}

// Verify checks the signature and returns the identity carried in "sub".
func (a *TokenAuthority) Verify(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.publicKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("token parse error: %w", err)
	}
	if !t.Valid {
		return "", fmt.Errorf("invalid token")
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	identity, ok := claims["sub"].(string)
	if !ok || identity == "" {
		return "", fmt.Errorf("missing sub in token")
	}
	return identity, nil
}

// ProviderFor returns a Provider that verifies tokenString on demand. An
// empty token yields ErrNoIdentity so callers can fall back to anon.
func (a *TokenAuthority) ProviderFor(tokenString string) Provider {
	return ProviderFunc(func(context.Context) (string, error) {
		if tokenString == "" {
			return "", ErrNoIdentity
		}
		return a.Verify(tokenString)
	})
}
