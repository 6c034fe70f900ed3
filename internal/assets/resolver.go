// internal/assets/resolver.go
package assets

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hearsay-games/hearsay/internal/models"
)

// Resolver turns opaque asset paths from the quote catalog into loadable
// URLs against a configured base.
type Resolver struct {
	base *url.URL
}

// NewResolver parses baseURL and returns a resolver rooted at it.
func NewResolver(baseURL string) (*Resolver, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid asset base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("asset base URL %q must be absolute", baseURL)
	}
	return &Resolver{base: u}, nil
}

// URL resolves one asset path. Already-absolute references and data URIs are
// passed through untouched.
func (r *Resolver) URL(path string) string {
	if path == "" {
		return ""
	}
	if strings.Contains(path, "://") || strings.HasPrefix(path, "data:") {
		return path
	}
	ref := &url.URL{Path: strings.TrimPrefix(path, "/")}
	return r.base.ResolveReference(ref).String()
}

// ResolveQuote returns a copy of q with every audio reference resolved and an
// image entry guaranteed for every speaker. Speakers with no recorded
// portrait get a generated placeholder (initials on a deterministic color).
func (r *Resolver) ResolveQuote(q models.QuoteRecord) models.QuoteRecord {
	out := q
	out.AudioBySpeaker = make(map[string]string, len(q.AudioBySpeaker))
	for speaker, path := range q.AudioBySpeaker {
		out.AudioBySpeaker[speaker] = r.URL(path)
	}
	out.ImageBySpeaker = make(map[string]string, len(q.Speakers))
	for _, speaker := range q.Speakers {
		if path, ok := q.ImageBySpeaker[speaker]; ok {
			out.ImageBySpeaker[speaker] = r.URL(path)
		} else {
			out.ImageBySpeaker[speaker] = PlaceholderPortrait(speaker)
		}
	}
	return out
}
