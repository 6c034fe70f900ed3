// internal/audio/player_test.go
package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures playback calls for assertions.
type recordingSink struct {
	mu      sync.Mutex
	buffers int
	clips   []string

	clipErr   error
	clipDelay time.Duration
}

func (s *recordingSink) PlayBuffer(ctx context.Context, wav []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers++
	return nil
}

func (s *recordingSink) PlayClip(ctx context.Context, url string) error {
	s.mu.Lock()
	s.clips = append(s.clips, url)
	delay := s.clipDelay
	err := s.clipErr
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (s *recordingSink) bufferCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestCuesQueueUntilUnlock(t *testing.T) {
	sink := &recordingSink{}
	p := NewPlayer(sink, testLogger())
	ctx := context.Background()

	p.PlayCue(ctx, CueCorrect)
	p.PlayCue(ctx, CueIncorrect)
	assert.Equal(t, 0, sink.bufferCount(), "nothing plays before the first user gesture")

	p.Unlock()
	assert.Equal(t, 2, sink.bufferCount(), "queued cues flush on unlock")

	p.PlayCue(ctx, CueCorrect)
	assert.Equal(t, 3, sink.bufferCount(), "cues play immediately once unlocked")
}

func TestUnlockIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	p := NewPlayer(sink, testLogger())
	p.PlayCue(context.Background(), CueCorrect)

	p.Unlock()
	p.Unlock()
	assert.Equal(t, 1, sink.bufferCount())
	assert.True(t, p.Unlocked())
}

func TestTicksAreNeverQueued(t *testing.T) {
	sink := &recordingSink{}
	p := NewPlayer(sink, testLogger())

	p.PlayTick(context.Background(), 5)
	p.Unlock()
	assert.Equal(t, 0, sink.bufferCount(), "a tick for a passed second must not replay on unlock")

	p.PlayTick(context.Background(), 4)
	assert.Equal(t, 1, sink.bufferCount())
}

func TestPlayClipCompletesNaturally(t *testing.T) {
	sink := &recordingSink{clipDelay: 10 * time.Millisecond}
	p := NewPlayer(sink, testLogger())
	p.Unlock()

	start := time.Now()
	p.PlayClip(context.Background(), "https://assets/clip.wav", time.Second)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "natural completion must win over the fallback")
	assert.Equal(t, []string{"https://assets/clip.wav"}, sink.clips)
}

func TestPlayClipBoundedWaitOnStall(t *testing.T) {
	sink := &recordingSink{clipDelay: 5 * time.Second}
	p := NewPlayer(sink, testLogger())
	p.Unlock()

	start := time.Now()
	p.PlayClip(context.Background(), "stalling.wav", 50*time.Millisecond)
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second, "fallback must cap the wait")
}

func TestPlayClipErrorIsAbsorbed(t *testing.T) {
	sink := &recordingSink{clipErr: errors.New("decode error")}
	p := NewPlayer(sink, testLogger())
	p.Unlock()

	done := make(chan struct{})
	go func() {
		p.PlayClip(context.Background(), "broken.wav", time.Second)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PlayClip did not return after a playback error")
	}
}

func TestPlayClipSkippedWhileLocked(t *testing.T) {
	sink := &recordingSink{clipDelay: time.Second}
	p := NewPlayer(sink, testLogger())

	start := time.Now()
	p.PlayClip(context.Background(), "locked.wav", time.Second)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Empty(t, sink.clips)
}

func TestCueWAVBuffers(t *testing.T) {
	p := NewPlayer(NullSink{}, testLogger())
	for _, kind := range []Cue{CueCorrect, CueIncorrect, CueTick} {
		wav := p.CueWAV(kind)
		require.NotEmpty(t, wav, "cue %s", kind)
		assert.Equal(t, "RIFF", string(wav[0:4]))
	}
	assert.Nil(t, p.CueWAV(Cue("bogus")))
}
