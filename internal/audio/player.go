// internal/audio/player.go
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Cue identifies a synthesized feedback sound.
type Cue string

const (
	CueCorrect   Cue = "correct"
	CueIncorrect Cue = "incorrect"
	CueTick      Cue = "tick"
)

// Sink is the environment's audio output. Browsers, test doubles, and the
// headless server all implement it. PlayClip streams a pre-recorded clip by
// URL and returns when playback ends or fails.
type Sink interface {
	PlayBuffer(ctx context.Context, wav []byte) error
	PlayClip(ctx context.Context, url string) error
}

// NullSink discards all audio. Used when the process has no audio output.
type NullSink struct{}

func (NullSink) PlayBuffer(context.Context, []byte) error { return nil }
func (NullSink) PlayClip(context.Context, string) error   { return nil }

// Player owns the synthesized cue buffers and mediates all playback. Until
// Unlock is called (the first user gesture, on platforms that require one)
// cue playback is queued instead of attempted, so nothing fails permanently.
// Audio is cosmetic: every error here is logged and absorbed.
type Player struct {
	sink Sink
	log  *logrus.Logger

	mu       sync.Mutex
	unlocked bool
	pending  []func()

	correctWAV   []byte
	incorrectWAV []byte
}

// NewPlayer synthesizes the cue buffers up front and returns a locked player.
func NewPlayer(sink Sink, logger *logrus.Logger) *Player {
	return &Player{
		sink:         sink,
		log:          logger,
		correctWAV:   EncodeWAV(SynthesizeCorrect(), SampleRate),
		incorrectWAV: EncodeWAV(SynthesizeIncorrect(), SampleRate),
	}
}

// Unlock marks audio as enabled and drains anything queued while locked.
// Safe to call more than once.
func (p *Player) Unlock() {
	p.mu.Lock()
	if p.unlocked {
		p.mu.Unlock()
		return
	}
	p.unlocked = true
	queued := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, play := range queued {
		play()
	}
}

// Unlocked reports whether a user gesture has enabled audio.
func (p *Player) Unlocked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unlocked
}

// PlayCue plays a feedback cue, queueing it if audio is still locked.
func (p *Player) PlayCue(ctx context.Context, kind Cue) {
	var wav []byte
	switch kind {
	case CueCorrect:
		wav = p.correctWAV
	case CueIncorrect:
		wav = p.incorrectWAV
	default:
		p.log.Warnf("unknown audio cue %q", kind)
		return
	}
	p.enqueueOrPlay(func() {
		if err := p.sink.PlayBuffer(ctx, wav); err != nil {
			p.log.Warnf("failed to play %s cue: %v", kind, err)
		}
	})
}

// PlayTick plays the countdown tick voice for the given remaining seconds.
// Ticks are never queued: a tick for a second that already passed is noise.
func (p *Player) PlayTick(ctx context.Context, remaining int) {
	p.mu.Lock()
	unlocked := p.unlocked
	p.mu.Unlock()
	if !unlocked {
		return
	}
	voice := TickVoiceFor(remaining)
	if err := p.sink.PlayBuffer(ctx, EncodeWAV(SynthesizeTick(voice), SampleRate)); err != nil {
		p.log.Warnf("failed to play countdown tick: %v", err)
	}
}

// PlayClip plays a recorded clip and blocks until natural completion or until
// maxWait elapses, whichever comes first. Exactly one of the two paths wins;
// a stalled or failed playback never blocks the caller beyond maxWait and is
// never treated as fatal.
func (p *Player) PlayClip(ctx context.Context, url string, maxWait time.Duration) {
	p.mu.Lock()
	unlocked := p.unlocked
	p.mu.Unlock()
	if !unlocked {
		p.log.Debugf("audio locked, skipping clip %s", url)
		return
	}

	clipCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- p.sink.PlayClip(clipCtx, url)
	}()

	fallback := time.NewTimer(maxWait)
	defer fallback.Stop()

	select {
	case err := <-done:
		if err != nil {
			p.log.Warnf("clip playback failed for %s: %v", url, err)
		}
	case <-fallback.C:
		p.log.Warnf("clip playback for %s exceeded %s, continuing", url, maxWait)
		cancel()
	case <-ctx.Done():
	}
}

func (p *Player) enqueueOrPlay(play func()) {
	p.mu.Lock()
	if !p.unlocked {
		p.pending = append(p.pending, play)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	play()
}

// CueWAV returns the encoded buffer for a cue so it can be served over HTTP.
// The tick cue uses the calm voice.
func (p *Player) CueWAV(kind Cue) []byte {
	switch kind {
	case CueCorrect:
		return p.correctWAV
	case CueIncorrect:
		return p.incorrectWAV
	case CueTick:
		return EncodeWAV(SynthesizeTick(TickVoiceFor(20)), SampleRate)
	default:
		return nil
	}
}
