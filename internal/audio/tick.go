// internal/audio/tick.go
package audio

import "math"

// Waveform selects the oscillator shape for a countdown tick.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
)

// Countdown urgency thresholds, in seconds remaining.
const (
	warnThreshold     = 10
	criticalThreshold = 5
)

// TickVoice describes one countdown tick: its oscillator, pitch, loudness,
// and length. The voice hardens and rises as time runs out.
type TickVoice struct {
	Wave     Waveform
	Freq     float64
	Gain     float64
	Duration float64
}

// TickVoiceFor returns the tick voice for the given remaining seconds:
// a soft sine at A4 normally, a triangle at E5 under ten seconds, and a
// harsher square at A5 in the final five.
func TickVoiceFor(remaining int) TickVoice {
	switch {
	case remaining <= criticalThreshold:
		return TickVoice{Wave: WaveSquare, Freq: 880, Gain: 0.6, Duration: 0.08}
	case remaining <= warnThreshold:
		return TickVoice{Wave: WaveTriangle, Freq: 660, Gain: 0.4, Duration: 0.1}
	default:
		return TickVoice{Wave: WaveSine, Freq: 440, Gain: 0.3, Duration: 0.1}
	}
}

// ShouldTick reports whether a tick plays at the given remaining seconds.
// Cadence escalates with urgency: every 5 s normally, every 2 s under ten
// seconds, every second in the final five.
func ShouldTick(remaining int) bool {
	switch {
	case remaining <= 0:
		return false
	case remaining <= criticalThreshold:
		return true
	case remaining <= warnThreshold:
		return remaining%2 == 0
	default:
		return remaining%5 == 0
	}
}

// SynthesizeTick renders a single tick with a 10 ms linear attack and a
// linear release over the rest of the voice's duration.
func SynthesizeTick(v TickVoice) []float64 {
	const attack = 0.01
	n := int(SampleRate * v.Duration)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate

		var envelope float64
		if t < attack {
			envelope = t / attack
		} else {
			envelope = 1 - (t-attack)/(v.Duration-attack)
		}

		phase := 2 * math.Pi * v.Freq * t
		var sample float64
		switch v.Wave {
		case WaveSquare:
			if math.Sin(phase) >= 0 {
				sample = 1
			} else {
				sample = -1
			}
		case WaveTriangle:
			sample = 2 / math.Pi * math.Asin(math.Sin(phase))
		default:
			sample = math.Sin(phase)
		}
		out[i] = v.Gain * envelope * sample
	}
	return out
}
