// internal/view/controller.go
package view

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hearsay-games/hearsay/internal/audio"
	"github.com/hearsay-games/hearsay/internal/models"
)

// Sender delivers view messages to the session host.
type Sender interface {
	Send(msg models.ViewMessage) error
}

// AudioPort is the slice of the audio player the controller drives.
// *audio.Player satisfies it.
type AudioPort interface {
	Unlock()
	PlayCue(ctx context.Context, kind audio.Cue)
	PlayTick(ctx context.Context, remaining int)
	PlayClip(ctx context.Context, url string, maxWait time.Duration)
}

const (
	defaultTickInterval = time.Second
	defaultResendWindow = 3 * time.Second
	defaultClipMaxWait  = 5 * time.Second
)

// Controller is the game view's state machine. One controller exists per
// mounted view; it owns the single active round and the countdown timer.
// Every path that ends a round bumps the round generation so stale timer
// callbacks and superseded waits cannot resolve a round twice.
type Controller struct {
	mu      sync.Mutex
	surface Surface
	sender  Sender
	audio   AudioPort
	log     *logrus.Logger

	// Overridable for tests; set before Mount.
	TickInterval time.Duration
	ResendWindow time.Duration
	ClipMaxWait  time.Duration

	categories []string

	identity    string
	score       int
	board       Board
	initialSeen bool
	started     bool
	closed      bool
	screen      Screen

	round      *RoundState
	roundGen   int
	timer      *time.Timer
	readyTimer *time.Timer
}

func NewController(surface Surface, sender Sender, audioPort AudioPort, categories []string, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.New()
	}
	return &Controller{
		surface:      surface,
		sender:       sender,
		audio:        audioPort,
		log:          logger,
		categories:   append([]string(nil), categories...),
		TickInterval: defaultTickInterval,
		ResendWindow: defaultResendWindow,
		ClipMaxWait:  defaultClipMaxWait,
	}
}

// Mount announces the view to the host. viewReady is resent on a timer until
// initialData arrives; resends are idempotent on the host side.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = false
	c.sendLocked(models.MsgViewReady, nil)
	c.armReadyResendLocked()
}

// Unmount stops the countdown and any pending resend without sending
// anything. Safe to call more than once.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.roundGen++
	c.stopTimerLocked()
	if c.readyTimer != nil {
		c.readyTimer.Stop()
		c.readyTimer = nil
	}
}

// HandleHostMessage decodes and applies one host->view message.
func (c *Controller) HandleHostMessage(ctx context.Context, raw []byte) error {
	var env struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("invalid host message: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch env.Type {
	case models.MsgInitialData:
		var data models.InitialData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return fmt.Errorf("invalid initialData payload: %w", err)
		}
		c.identity = data.Identity
		c.score = data.Score
		c.initialSeen = true
		if c.readyTimer != nil {
			c.readyTimer.Stop()
			c.readyTimer = nil
		}
		if c.screen == ScreenCategorySelect {
			c.showLocked(ScreenCategorySelect, c.categoryModelLocked())
		}
	case models.MsgGameData:
		var data models.GameData
		if err := json.Unmarshal(env.Data, &data); err != nil || !validGameData(data) {
			c.log.Warnf("rejecting invalid round payload: %v", err)
			c.showLocked(ScreenError, ErrorModel{Message: "Couldn't load that round. Give it another try."})
			return nil
		}
		c.startRoundLocked(data)
	case models.MsgLeaderboardData:
		var entries []models.LeaderboardEntry
		if err := json.Unmarshal(env.Data, &entries); err != nil {
			return fmt.Errorf("invalid leaderboardData payload: %w", err)
		}
		c.board.Update(entries)
		if c.screen == ScreenLeaderboard {
			c.showLocked(ScreenLeaderboard, LeaderboardModel{Rows: c.board.Rows(c.identity, c.score)})
		}
	default:
		c.log.Debugf("ignoring unknown host message type %q", env.Type)
	}
	return nil
}

// PressStart is the player's explicit start gesture. It is the only place
// that unlocks audio and the only trigger for readyForGameData; nothing is
// requested from the host before it.
func (c *Controller) PressStart(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
	c.audio.Unlock()
	c.sendLocked(models.MsgReadyForGameData, nil)
	c.showLocked(ScreenCategorySelect, c.categoryModelLocked())
}

// SelectCategory requests a round for the chosen category.
func (c *Controller) SelectCategory(ctx context.Context, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		c.log.Warnf("category selected before start, ignoring")
		return
	}
	c.cancelRoundLocked()
	c.sendLocked(models.MsgCategorySelected, models.CategorySelectedData{Category: category})
	c.showLocked(ScreenLoading, nil)
}

// SelectSpeaker resolves the active round with the player's pick. The
// countdown freezes immediately; the result screen appears after the chosen
// speaker's clip finishes or after a bounded wait, whichever comes first.
func (c *Controller) SelectSpeaker(ctx context.Context, name string) {
	c.mu.Lock()
	if c.round == nil || c.round.Resolved {
		c.mu.Unlock()
		return
	}
	if !c.round.Quote.HasSpeaker(name) {
		c.log.Warnf("selection %q is not a speaker of the active round", name)
		c.mu.Unlock()
		return
	}

	c.stopTimerLocked()
	c.roundGen++
	gen := c.roundGen
	round := c.round
	round.resolve(name)
	if round.Correct {
		c.score += round.Points
	}
	c.sendLocked(models.MsgRoundResolved, models.RoundResolvedData{
		Selection:    round.Selection,
		Correct:      round.Correct,
		PointsEarned: round.Points,
	})
	clipURL := round.Quote.AudioBySpeaker[round.Selection]
	cue := audio.CueIncorrect
	if round.Correct {
		cue = audio.CueCorrect
	}
	c.mu.Unlock()

	c.audio.PlayCue(ctx, cue)
	if clipURL != "" {
		c.audio.PlayClip(ctx, clipURL, c.ClipMaxWait)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.roundGen != gen || c.closed {
		return
	}
	c.showLocked(ScreenResult, ResultModel{
		Correct:   round.Correct,
		Selection: round.Selection,
		Speaker:   round.Quote.CorrectSpeaker,
		Points:    round.Points,
		Score:     c.score,
	})
}

// PlayAgain requests a fresh quote for the same category.
func (c *Controller) PlayAgain(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.round == nil {
		return
	}
	c.cancelRoundLocked()
	c.sendLocked(models.MsgPlayAgain, nil)
	c.showLocked(ScreenLoading, nil)
}

// NextCategory returns to category selection after a result.
func (c *Controller) NextCategory(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelRoundLocked()
	c.showLocked(ScreenCategorySelect, c.categoryModelLocked())
}

// ShowLeaderboard opens the cached standings. Independent of round state.
func (c *Controller) ShowLeaderboard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showLocked(ScreenLeaderboard, LeaderboardModel{Rows: c.board.Rows(c.identity, c.score)})
}

// HideLeaderboard returns to category selection.
func (c *Controller) HideLeaderboard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showLocked(ScreenCategorySelect, c.categoryModelLocked())
}

// Retry recovers from the error screen. If the session never received its
// initialData the handshake is retried as well.
func (c *Controller) Retry(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialSeen {
		c.sendLocked(models.MsgViewReady, nil)
		c.armReadyResendLocked()
	}
	c.showLocked(ScreenCategorySelect, c.categoryModelLocked())
}

// Screen reports the currently visible screen.
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// Score reports the local display score.
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

func validGameData(data models.GameData) bool {
	if data.Category == "" {
		return false
	}
	return data.Quote.Validate() == nil
}

func (c *Controller) startRoundLocked(data models.GameData) {
	c.cancelRoundLocked()
	c.round = newRound(data.Category, data.Quote)
	c.roundGen++
	c.showLocked(ScreenPlaying, PlayingModel{
		Category:  data.Category,
		Quote:     data.Quote,
		Remaining: c.round.Remaining,
	})
	c.armTickLocked(c.roundGen)
}

// armTickLocked schedules the next one-second countdown step. The callback
// re-checks the round generation so a tick armed for a finished round is
// discarded instead of resolving anything.
func (c *Controller) armTickLocked(gen int) {
	c.timer = time.AfterFunc(c.TickInterval, func() {
		c.tick(gen)
	})
}

func (c *Controller) tick(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.roundGen || c.round == nil || c.round.Resolved {
		return
	}
	c.round.Remaining--
	remaining := c.round.Remaining
	c.surface.UpdateCountdown(remaining)
	if remaining <= 0 {
		c.timeOutRoundLocked()
		return
	}
	if audio.ShouldTick(remaining) {
		c.audio.PlayTick(context.Background(), remaining)
	}
	c.armTickLocked(gen)
}

// timeOutRoundLocked resolves the round as incorrect with zero points and
// shows the time's-up result.
func (c *Controller) timeOutRoundLocked() {
	round := c.round
	if round == nil || !round.timeout() {
		return
	}
	c.roundGen++
	c.stopTimerLocked()
	c.sendLocked(models.MsgRoundResolved, models.RoundResolvedData{Correct: false, PointsEarned: 0})
	c.audio.PlayCue(context.Background(), audio.CueIncorrect)
	c.showLocked(ScreenResult, ResultModel{
		TimedOut: true,
		Speaker:  round.Quote.CorrectSpeaker,
		Score:    c.score,
	})
}

func (c *Controller) cancelRoundLocked() {
	c.roundGen++
	c.stopTimerLocked()
	c.round = nil
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) armReadyResendLocked() {
	if c.readyTimer != nil {
		c.readyTimer.Stop()
	}
	c.readyTimer = time.AfterFunc(c.ResendWindow, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || c.initialSeen {
			return
		}
		c.sendLocked(models.MsgViewReady, nil)
		c.armReadyResendLocked()
	})
}

func (c *Controller) categoryModelLocked() CategorySelectModel {
	return CategorySelectModel{
		Categories: append([]string(nil), c.categories...),
		Identity:   c.identity,
		Score:      c.score,
	}
}

func (c *Controller) sendLocked(msgType string, payload interface{}) {
	msg := models.ViewMessage{Type: msgType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			c.log.Errorf("failed to encode %s payload: %v", msgType, err)
			return
		}
		msg.Data = raw
	}
	if err := c.sender.Send(msg); err != nil {
		c.log.Warnf("failed to send %s: %v", msgType, err)
	}
}

// showLocked is the entry action for every screen: reconcile the surface
// against the screen's descriptor, then show it. If the surface cannot be
// rebuilt the controller falls back to the recoverable error screen rather
// than failing silently.
func (c *Controller) showLocked(screen Screen, model interface{}) {
	if err := EnsureReady(c.surface, screen); err != nil {
		c.log.Errorf("surface not ready for %s: %v", screen, err)
		if screen != ScreenError {
			c.showLocked(ScreenError, ErrorModel{Message: "Something went wrong. Tap retry to continue."})
		}
		return
	}
	c.surface.Show(screen, model)
	c.screen = screen
}
