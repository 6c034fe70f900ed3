// internal/session/host.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hearsay-games/hearsay/internal/assets"
	"github.com/hearsay-games/hearsay/internal/cache"
	"github.com/hearsay-games/hearsay/internal/catalog"
	"github.com/hearsay-games/hearsay/internal/identity"
	"github.com/hearsay-games/hearsay/internal/models"
)

// Host is the server side of one connected game view. It owns the player's
// identity and score, selects quotes, and pushes host messages through SendFn.
// All state is guarded by Mu; handlers may be invoked from any goroutine.
type Host struct {
	ID uuid.UUID
	Mu sync.Mutex

	identities identity.Provider
	scores     cache.ScoreStore
	quotes     *catalog.Catalog
	assets     *assets.Resolver
	log        *logrus.Logger

	// SendFn delivers a message to the connected view. If nil, messages are
	// dropped.
	SendFn func(msg models.HostMessage)

	player         models.PlayerSession
	identityLoaded bool

	currentCategory string
	roundOpen       bool
}

func NewHost(ids identity.Provider, scores cache.ScoreStore, quotes *catalog.Catalog, resolver *assets.Resolver, logger *logrus.Logger) *Host {
	if logger == nil {
		logger = logrus.New()
	}
	return &Host{
		ID:         uuid.New(),
		identities: ids,
		scores:     scores,
		quotes:     quotes,
		assets:     resolver,
		log:        logger,
	}
}

// Dispatch decodes a raw view message and routes it to the matching handler.
// Unknown message types are logged and ignored so a newer view cannot take
// down an older host.
func (h *Host) Dispatch(ctx context.Context, raw []byte) error {
	var msg models.ViewMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("invalid view message: %w", err)
	}

	switch msg.Type {
	case models.MsgViewReady:
		h.HandleViewReady(ctx)
	case models.MsgReadyForGameData:
		h.HandleReadyForGameData(ctx)
	case models.MsgCategorySelected:
		var data models.CategorySelectedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return fmt.Errorf("invalid categorySelected payload: %w", err)
		}
		h.HandleCategorySelected(ctx, data.Category)
	case models.MsgRoundResolved:
		var data models.RoundResolvedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return fmt.Errorf("invalid roundResolved payload: %w", err)
		}
		h.HandleRoundResolved(ctx, data)
	case models.MsgPlayAgain:
		h.HandlePlayAgain(ctx)
	default:
		h.log.Warnf("host %s: unknown view message type %q", h.ID, msg.Type)
	}
	return nil
}

// HandleViewReady loads the player session on first receipt and replies with
// initialData. The view may resend viewReady if it saw no response; every
// receipt answers with the current state, so resends are harmless.
func (h *Host) HandleViewReady(ctx context.Context) {
	h.Mu.Lock()
	defer h.Mu.Unlock()

	h.ensurePlayerLocked(ctx)
	h.sendLocked(models.HostMessage{
		Type: models.MsgInitialData,
		Data: models.InitialData{Identity: h.player.Identity, Score: h.player.Score},
	})
}

// HandleReadyForGameData re-sends the current session state. The view only
// sends this after an explicit start action, so it doubles as the resume path
// when a view reconnects mid-round.
func (h *Host) HandleReadyForGameData(ctx context.Context) {
	h.Mu.Lock()
	defer h.Mu.Unlock()

	h.ensurePlayerLocked(ctx)
	h.sendLocked(models.HostMessage{
		Type: models.MsgInitialData,
		Data: models.InitialData{Identity: h.player.Identity, Score: h.player.Score},
	})
	h.sendLocked(models.HostMessage{
		Type: models.MsgLeaderboardData,
		Data: h.leaderboardLocked(ctx),
	})
}

// HandleCategorySelected starts a round: picks a quote from the category,
// resolves its asset references, and pushes the gameData payload. Any round
// still in flight is superseded.
func (h *Host) HandleCategorySelected(ctx context.Context, category string) {
	h.Mu.Lock()
	defer h.Mu.Unlock()

	quote, err := h.quotes.Select(category)
	if err != nil {
		h.log.Warnf("host %s: cannot start round: %v", h.ID, err)
		return
	}
	if h.assets != nil {
		quote = h.assets.ResolveQuote(quote)
	}

	h.currentCategory = category
	h.roundOpen = true

	h.sendLocked(models.HostMessage{
		Type: models.MsgGameData,
		Data: models.GameData{Category: category, Quote: quote},
	})
}

// HandleRoundResolved applies the outcome of the current round. A resolution
// arriving after the round already closed (a stale timer, a duplicate send)
// is ignored. Persistence is best effort: a failed write is logged and the
// in-memory score still advances.
func (h *Host) HandleRoundResolved(ctx context.Context, data models.RoundResolvedData) {
	h.Mu.Lock()
	defer h.Mu.Unlock()

	if !h.roundOpen {
		h.log.Debugf("host %s: stale round resolution ignored", h.ID)
		return
	}
	h.roundOpen = false

	h.ensurePlayerLocked(ctx)
	if data.Correct && data.PointsEarned > 0 {
		h.player.Score += data.PointsEarned
		if err := h.scores.Set(ctx, h.player.Identity, h.player.Score); err != nil {
			h.log.Warnf("host %s: failed to persist score for %s: %v", h.ID, h.player.Identity, err)
		}
	}

	h.sendLocked(models.HostMessage{
		Type: models.MsgInitialData,
		Data: models.InitialData{Identity: h.player.Identity, Score: h.player.Score},
	})
	h.sendLocked(models.HostMessage{
		Type: models.MsgLeaderboardData,
		Data: h.leaderboardLocked(ctx),
	})
}

// HandlePlayAgain starts a fresh round in the same category.
func (h *Host) HandlePlayAgain(ctx context.Context) {
	h.Mu.Lock()
	category := h.currentCategory
	h.Mu.Unlock()

	if category == "" {
		h.log.Debugf("host %s: playAgain before any category was selected", h.ID)
		return
	}
	h.HandleCategorySelected(ctx, category)
}

// Leaderboard returns the current standings: sorted by score descending,
// ties kept in store order, with the session's player always present.
func (h *Host) Leaderboard(ctx context.Context) []models.LeaderboardEntry {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	h.ensurePlayerLocked(ctx)
	return h.leaderboardLocked(ctx)
}

func (h *Host) leaderboardLocked(ctx context.Context) []models.LeaderboardEntry {
	entries, err := h.scores.All(ctx)
	if err != nil {
		h.log.Warnf("host %s: leaderboard read failed: %v", h.ID, err)
		entries = nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	found := false
	for _, e := range entries {
		if e.Identity == h.player.Identity {
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, models.LeaderboardEntry{Identity: h.player.Identity, Score: h.player.Score})
	}
	return entries
}

// ensurePlayerLocked loads identity and stored score once per session.
// Lookup failures fall back to the anonymous identity with score 0 and are
// never surfaced to the view.
func (h *Host) ensurePlayerLocked(ctx context.Context) {
	if h.identityLoaded {
		return
	}
	h.identityLoaded = true

	who, err := h.identities.CurrentIdentity(ctx)
	if err != nil || who == "" {
		if err != nil {
			h.log.Warnf("host %s: identity lookup failed, continuing as %s: %v", h.ID, models.AnonIdentity, err)
		}
		who = models.AnonIdentity
	}
	h.player.Identity = who

	score, err := h.scores.Get(ctx, who)
	if err != nil {
		h.log.Warnf("host %s: score read failed for %s, starting at 0: %v", h.ID, who, err)
		score = 0
	}
	h.player.Score = score
}

func (h *Host) sendLocked(msg models.HostMessage) {
	if h.SendFn == nil {
		return
	}
	h.SendFn(msg)
}
