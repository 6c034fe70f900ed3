// internal/view/controller_test.go
package view

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsay-games/hearsay/internal/audio"
	"github.com/hearsay-games/hearsay/internal/catalog"
	"github.com/hearsay-games/hearsay/internal/models"
)

type shownScreen struct {
	screen Screen
	model  interface{}
}

// fakeSurface pretends every element exists unless marked missing.
type fakeSurface struct {
	mu         sync.Mutex
	missing    map[string]bool
	createErr  map[string]error
	created    []string
	shows      []shownScreen
	countdowns []int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		missing:   map[string]bool{},
		createErr: map[string]error{},
	}
}

func (s *fakeSurface) Has(element string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.missing[element]
}

func (s *fakeSurface) Create(element string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.createErr[element]; err != nil {
		return err
	}
	s.created = append(s.created, element)
	delete(s.missing, element)
	return nil
}

func (s *fakeSurface) Show(screen Screen, model interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows = append(s.shows, shownScreen{screen, model})
}

func (s *fakeSurface) UpdateCountdown(remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countdowns = append(s.countdowns, remaining)
}

func (s *fakeSurface) lastShow(t *testing.T) shownScreen {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.shows)
	return s.shows[len(s.shows)-1]
}

type fakeSender struct {
	mu       sync.Mutex
	messages []models.ViewMessage
}

func (f *fakeSender) Send(msg models.ViewMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeSender) ofType(t string) []models.ViewMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ViewMessage
	for _, m := range f.messages {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

type fakeAudio struct {
	mu      sync.Mutex
	unlocks int
	cues    []audio.Cue
	ticks   []int
	clips   []string

	clipDelay time.Duration
}

func (f *fakeAudio) Unlock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlocks++
}

func (f *fakeAudio) PlayCue(ctx context.Context, kind audio.Cue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cues = append(f.cues, kind)
}

func (f *fakeAudio) PlayTick(ctx context.Context, remaining int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks = append(f.ticks, remaining)
}

func (f *fakeAudio) PlayClip(ctx context.Context, url string, maxWait time.Duration) {
	f.mu.Lock()
	f.clips = append(f.clips, url)
	delay := f.clipDelay
	f.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
}

func viewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newTestController(t *testing.T) (*Controller, *fakeSurface, *fakeSender, *fakeAudio) {
	t.Helper()
	surface := newFakeSurface()
	sender := &fakeSender{}
	audioPort := &fakeAudio{}
	c := NewController(surface, sender, audioPort, catalog.New().Categories(), viewLogger())
	c.TickInterval = time.Hour
	c.ResendWindow = time.Hour
	c.ClipMaxWait = 50 * time.Millisecond
	return c, surface, sender, audioPort
}

func musicQuote(t *testing.T) models.QuoteRecord {
	t.Helper()
	q, err := catalog.New().Select("Music")
	require.NoError(t, err)
	return q
}

func hostMessage(t *testing.T, msgType string, payload interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{"type": msgType, "data": payload})
	require.NoError(t, err)
	return raw
}

func deliverRound(t *testing.T, c *Controller, category string, quote models.QuoteRecord) {
	t.Helper()
	require.NoError(t, c.HandleHostMessage(context.Background(),
		hostMessage(t, models.MsgGameData, models.GameData{Category: category, Quote: quote})))
}

// runTicks advances the countdown n seconds without waiting on real timers.
func runTicks(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.mu.Lock()
		gen := c.roundGen
		c.mu.Unlock()
		c.tick(gen)
	}
}

func TestPoints(t *testing.T) {
	cases := map[int]int{20: 15, 15: 13, 10: 10, 5: 8, 1: 6, 0: 5, -3: 5}
	for remaining, want := range cases {
		assert.Equalf(t, want, Points(remaining), "remaining=%d", remaining)
	}
}

func TestMountResendsViewReadyUntilAnswered(t *testing.T) {
	c, _, sender, _ := newTestController(t)
	c.ResendWindow = 5 * time.Millisecond
	c.Mount(context.Background())

	require.Eventually(t, func() bool {
		return len(sender.ofType(models.MsgViewReady)) >= 3
	}, time.Second, time.Millisecond, "viewReady must be resent while unanswered")

	require.NoError(t, c.HandleHostMessage(context.Background(),
		hostMessage(t, models.MsgInitialData, models.InitialData{Identity: "p1", Score: 7})))
	settled := len(sender.ofType(models.MsgViewReady))
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, len(sender.ofType(models.MsgViewReady)), "resends stop once initialData arrives")
}

func TestNoDataRequestBeforeStart(t *testing.T) {
	ctx := context.Background()
	c, _, sender, audioPort := newTestController(t)
	c.Mount(ctx)
	require.NoError(t, c.HandleHostMessage(ctx,
		hostMessage(t, models.MsgInitialData, models.InitialData{Identity: "p1"})))

	c.SelectCategory(ctx, "Music")
	assert.Empty(t, sender.ofType(models.MsgReadyForGameData))
	assert.Empty(t, sender.ofType(models.MsgCategorySelected), "nothing is requested before the start gesture")
	assert.Zero(t, audioPort.unlocks)

	c.PressStart(ctx)
	assert.Len(t, sender.ofType(models.MsgReadyForGameData), 1)
	assert.Equal(t, 1, audioPort.unlocks, "the start gesture unlocks audio")
	assert.Equal(t, ScreenCategorySelect, c.Screen())

	c.SelectCategory(ctx, "Music")
	assert.Len(t, sender.ofType(models.MsgCategorySelected), 1)
	assert.Equal(t, ScreenLoading, c.Screen())
}

// A new player picks Music and answers correctly with 15 seconds remaining:
// max(5, ceil(15/2)+5) = 13 points, score 0 -> 13.
func TestCorrectAnswerWithFifteenSecondsLeft(t *testing.T) {
	ctx := context.Background()
	c, surface, sender, audioPort := newTestController(t)
	c.Mount(ctx)
	require.NoError(t, c.HandleHostMessage(ctx,
		hostMessage(t, models.MsgInitialData, models.InitialData{Identity: "p1", Score: 0})))
	c.PressStart(ctx)
	c.SelectCategory(ctx, "Music")

	quote := musicQuote(t)
	deliverRound(t, c, "Music", quote)
	assert.Equal(t, ScreenPlaying, c.Screen())

	runTicks(c, 5)
	c.SelectSpeaker(ctx, quote.CorrectSpeaker)

	resolved := sender.ofType(models.MsgRoundResolved)
	require.Len(t, resolved, 1)
	var data models.RoundResolvedData
	require.NoError(t, json.Unmarshal(resolved[0].Data, &data))
	assert.True(t, data.Correct)
	assert.Equal(t, 13, data.PointsEarned)
	assert.Equal(t, 13, c.Score())

	last := surface.lastShow(t)
	assert.Equal(t, ScreenResult, last.screen)
	result := last.model.(ResultModel)
	assert.True(t, result.Correct)
	assert.Equal(t, 13, result.Points)
	assert.Equal(t, []audio.Cue{audio.CueCorrect}, audioPort.cues)
	assert.Equal(t, []string{quote.AudioBySpeaker[quote.CorrectSpeaker]}, audioPort.clips,
		"the chosen speaker's clip plays, here the correct one")
}

func TestWrongAnswerScoresNothing(t *testing.T) {
	ctx := context.Background()
	c, surface, sender, audioPort := newTestController(t)
	quote := musicQuote(t)
	deliverRound(t, c, "Music", quote)

	var wrong string
	for _, s := range quote.Speakers {
		if s != quote.CorrectSpeaker {
			wrong = s
			break
		}
	}
	c.SelectSpeaker(ctx, wrong)

	var data models.RoundResolvedData
	require.NoError(t, json.Unmarshal(sender.ofType(models.MsgRoundResolved)[0].Data, &data))
	assert.False(t, data.Correct)
	assert.Zero(t, data.PointsEarned)
	assert.Zero(t, c.Score())
	assert.Equal(t, []audio.Cue{audio.CueIncorrect}, audioPort.cues)
	assert.Equal(t, []string{quote.AudioBySpeaker[wrong]}, audioPort.clips,
		"a wrong pick plays that speaker's clip, not the answer's")
	assert.Equal(t, ScreenResult, surface.lastShow(t).screen)
}

func TestTimeoutResolvesExactlyOnce(t *testing.T) {
	c, surface, sender, _ := newTestController(t)
	c.TickInterval = time.Millisecond
	deliverRound(t, c, "Music", musicQuote(t))

	require.Eventually(t, func() bool {
		return c.Screen() == ScreenResult
	}, 2*time.Second, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	resolved := sender.ofType(models.MsgRoundResolved)
	require.Len(t, resolved, 1, "a timed-out round resolves exactly once")
	var data models.RoundResolvedData
	require.NoError(t, json.Unmarshal(resolved[0].Data, &data))
	assert.False(t, data.Correct)
	assert.Zero(t, data.PointsEarned)
	assert.Zero(t, c.Score())

	result := surface.lastShow(t).model.(ResultModel)
	assert.True(t, result.TimedOut)
}

func TestSelectionCancelsPendingTick(t *testing.T) {
	ctx := context.Background()
	c, _, sender, _ := newTestController(t)
	quote := musicQuote(t)
	deliverRound(t, c, "Music", quote)

	c.mu.Lock()
	staleGen := c.roundGen
	c.mu.Unlock()

	c.SelectSpeaker(ctx, quote.CorrectSpeaker)
	c.tick(staleGen)
	c.tick(staleGen)

	assert.Len(t, sender.ofType(models.MsgRoundResolved), 1, "a stale timer must not resolve the round again")
}

func TestCountdownTicksEscalate(t *testing.T) {
	c, surface, _, audioPort := newTestController(t)
	deliverRound(t, c, "Music", musicQuote(t))

	runTicks(c, 19)
	surface.mu.Lock()
	first := surface.countdowns[0]
	total := len(surface.countdowns)
	surface.mu.Unlock()
	assert.Equal(t, 19, first)
	assert.Equal(t, 19, total)

	// 15 from the 5s cadence, 10/8/6 every 2s, then every second from 5 down.
	assert.Equal(t, []int{15, 10, 8, 6, 5, 4, 3, 2, 1}, audioPort.ticks)
}

func TestInvalidRoundPayloadShowsRecoverableError(t *testing.T) {
	ctx := context.Background()
	c, _, sender, _ := newTestController(t)
	c.Mount(ctx)
	require.NoError(t, c.HandleHostMessage(ctx,
		hostMessage(t, models.MsgInitialData, models.InitialData{Identity: "p1"})))
	c.PressStart(ctx)

	require.NoError(t, c.HandleHostMessage(ctx, hostMessage(t, models.MsgGameData, models.GameData{Category: "Music"})))
	assert.Equal(t, ScreenError, c.Screen(), "a quote with no data must not start a round")
	assert.Empty(t, sender.ofType(models.MsgRoundResolved))

	c.Retry(ctx)
	assert.Equal(t, ScreenCategorySelect, c.Screen())
}

func TestSlowClipStillReachesResult(t *testing.T) {
	ctx := context.Background()
	c, surface, _, audioPort := newTestController(t)
	audioPort.clipDelay = 20 * time.Millisecond
	quote := musicQuote(t)
	deliverRound(t, c, "Music", quote)

	start := time.Now()
	c.SelectSpeaker(ctx, quote.CorrectSpeaker)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, ScreenResult, surface.lastShow(t).screen)
}

func TestReconcilerRebuildsMissingElements(t *testing.T) {
	ctx := context.Background()
	c, surface, _, _ := newTestController(t)
	surface.missing["category-grid"] = true

	c.PressStart(ctx)
	assert.Contains(t, surface.created, "category-grid", "missing elements are rebuilt, not assumed")
	assert.Equal(t, ScreenCategorySelect, c.Screen())
}

func TestUnbuildableSurfaceFallsBackToErrorScreen(t *testing.T) {
	ctx := context.Background()
	c, surface, _, _ := newTestController(t)
	surface.missing["spinner"] = true
	surface.createErr["spinner"] = errors.New("container detached")

	c.PressStart(ctx)
	c.SelectCategory(ctx, "Music")
	assert.Equal(t, ScreenError, c.Screen(), "an unbuildable screen surfaces as a recoverable error")
}

func TestPlayAgainRequestsNewQuote(t *testing.T) {
	ctx := context.Background()
	c, _, sender, _ := newTestController(t)
	quote := musicQuote(t)
	deliverRound(t, c, "Music", quote)
	c.SelectSpeaker(ctx, quote.CorrectSpeaker)

	c.PlayAgain(ctx)
	assert.Len(t, sender.ofType(models.MsgPlayAgain), 1)
	assert.Equal(t, ScreenLoading, c.Screen())

	deliverRound(t, c, "Music", quote)
	assert.Equal(t, ScreenPlaying, c.Screen())
}

func TestUnmountStopsCountdownWithoutSending(t *testing.T) {
	c, _, sender, _ := newTestController(t)
	c.TickInterval = time.Millisecond
	c.Mount(context.Background())
	deliverRound(t, c, "Music", musicQuote(t))

	c.Unmount()
	before := len(sender.ofType(models.MsgRoundResolved))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, len(sender.ofType(models.MsgRoundResolved)), "no resolution after unmount")
	assert.Zero(t, before)
}

func TestLeaderboardRows(t *testing.T) {
	var b Board
	b.Update([]models.LeaderboardEntry{
		{Identity: "alice", Score: 30},
		{Identity: "bob", Score: 50},
		{Identity: "carol", Score: 30},
	})

	rows := b.Rows("dave", 12)
	require.Len(t, rows, 4)
	assert.Equal(t, "bob", rows[0].Identity)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "alice", rows[1].Identity, "ties keep received order")
	assert.Equal(t, "carol", rows[2].Identity)
	assert.Equal(t, "dave", rows[3].Identity)
	assert.True(t, rows[3].Self)
	assert.Zero(t, rows[3].Rank, "the appended player gets a placeholder rank")

	rows = b.Rows("alice", 30)
	require.Len(t, rows, 3)
	assert.True(t, rows[1].Self, "a ranked player is never duplicated")
}

func TestLeaderboardScreenRefreshesOnNewData(t *testing.T) {
	ctx := context.Background()
	c, surface, _, _ := newTestController(t)
	require.NoError(t, c.HandleHostMessage(ctx,
		hostMessage(t, models.MsgInitialData, models.InitialData{Identity: "p1", Score: 5})))

	c.ShowLeaderboard()
	assert.Equal(t, ScreenLeaderboard, c.Screen())

	require.NoError(t, c.HandleHostMessage(ctx, hostMessage(t, models.MsgLeaderboardData,
		[]models.LeaderboardEntry{{Identity: "p1", Score: 5}, {Identity: "p2", Score: 9}})))

	model := surface.lastShow(t).model.(LeaderboardModel)
	require.Len(t, model.Rows, 2)
	assert.Equal(t, "p2", model.Rows[0].Identity)

	c.HideLeaderboard()
	assert.Equal(t, ScreenCategorySelect, c.Screen())
}
