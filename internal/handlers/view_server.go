// internal/handlers/view_server.go
package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hearsay-games/hearsay/internal/assets"
	"github.com/hearsay-games/hearsay/internal/audio"
	"github.com/hearsay-games/hearsay/internal/cache"
	"github.com/hearsay-games/hearsay/internal/catalog"
	"github.com/hearsay-games/hearsay/internal/identity"
	"github.com/hearsay-games/hearsay/internal/session"
)

// ViewServer holds the shared collaborators every connected game view needs:
// the quote catalog, the score store, the identity provider, and the live
// session registry.
type ViewServer struct {
	Log        *logrus.Logger
	Sessions   *session.Store
	Scores     cache.ScoreStore
	Identities identity.Provider
	Quotes     *catalog.Catalog
	Assets     *assets.Resolver
	Cues       *audio.Player

	// Auth, when set, lets a view present a signed session token on connect.
	// Views without a valid token fall back to Identities.
	Auth *identity.TokenAuthority

	// IdentityTTL bounds how long a resolved identity is reused.
	IdentityTTL time.Duration
}

func NewViewServer(logger *logrus.Logger, scores cache.ScoreStore, ids identity.Provider, quotes *catalog.Catalog, resolver *assets.Resolver) *ViewServer {
	if logger == nil {
		logger = logrus.New()
	}
	return &ViewServer{
		Log:         logger,
		Sessions:    session.NewStore(),
		Scores:      scores,
		Identities:  ids,
		Quotes:      quotes,
		Assets:      resolver,
		Cues:        audio.NewPlayer(audio.NullSink{}, logger),
		IdentityTTL: time.Hour,
	}
}

// NewHost creates and registers a session host for one incoming view
// connection. The caller owns removal via Sessions.Delete.
func (vs *ViewServer) NewHost(r *http.Request) *session.Host {
	h := session.NewHost(vs.providerFor(r), vs.Scores, vs.Quotes, vs.Assets, vs.Log)
	vs.Sessions.Add(h)
	return h
}

// providerFor picks the identity provider for one connection: the signed
// session token when present and an authority is configured, otherwise the
// server-wide provider. Either way the result is cached for IdentityTTL.
func (vs *ViewServer) providerFor(r *http.Request) identity.Provider {
	p := vs.Identities
	if vs.Auth != nil {
		if token := r.URL.Query().Get("token"); token != "" {
			p = vs.Auth.ProviderFor(token)
		}
	}
	return identity.NewCached(p, vs.IdentityTTL)
}
