// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
)

// SampleRate for all synthesized buffers.
const SampleRate = 44100

// Durations of the feedback cues, in seconds.
const (
	correctDuration   = 1.0
	incorrectDuration = 0.7
)

// SynthesizeCorrect renders the "correct answer" chime: four stepped pitches
// of a major arpeggio over one second, quick attack, exponential decay, a
// light second-harmonic layer, and a short cross-fade between notes.
func SynthesizeCorrect() []float64 {
	n := int(SampleRate * correctDuration)
	out := make([]float64, n)

	const baseFreq = 440.0 // A4
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		envelope := math.Min(1, t*10) * math.Exp(-3*t)

		var sample float64
		switch {
		case t < 0.2:
			sample = math.Sin(2 * math.Pi * baseFreq * t)
		case t < 0.4:
			sample = math.Sin(2 * math.Pi * (baseFreq * 5 / 4) * t)
		case t < 0.6:
			sample = math.Sin(2 * math.Pi * (baseFreq * 3 / 2) * t)
		default:
			sample = math.Sin(2 * math.Pi * (baseFreq * 2) * t)
		}

		// Blend in a sliver of the previous note at each step so the jumps
		// do not click.
		switch {
		case t > 0.2 && t < 0.25:
			blend := (0.25 - t) / 0.05
			sample = blend*math.Sin(2*math.Pi*baseFreq*t) + (1-blend)*sample
		case t > 0.4 && t < 0.45:
			blend := (0.45 - t) / 0.05
			sample = blend*math.Sin(2*math.Pi*(baseFreq*5/4)*t) + (1-blend)*sample
		case t > 0.6 && t < 0.65:
			blend := (0.65 - t) / 0.05
			sample = blend*math.Sin(2*math.Pi*(baseFreq*3/2)*t) + (1-blend)*sample
		}

		sample += 0.3 * math.Sin(4*math.Pi*baseFreq*t) * math.Exp(-5*t)

		out[i] = 0.5 * sample * envelope
	}
	return out
}

// SynthesizeIncorrect renders the "wrong answer" buzz: two pulses over 0.7
// seconds, a 220 Hz base with detuned partials, a noise layer, a slow
// downward pitch drift, and an 8 Hz amplitude wobble. The noise source is
// seeded so the buffer is reproducible.
func SynthesizeIncorrect() []float64 {
	n := int(SampleRate * incorrectDuration)
	out := make([]float64, n)
	noise := rand.New(rand.NewSource(0x4ea))

	const baseFreq = 220.0 // A3
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate

		var envelope float64
		if t < 0.3 {
			envelope = math.Min(1, t*10) * math.Exp(-10*t)
		} else {
			envelope = math.Min(1, (t-0.3)*10) * math.Exp(-10*(t-0.3))
		}

		freq := baseFreq * (1 - t*0.2)

		sample := math.Sin(2 * math.Pi * freq * t)
		sample += 0.5 * math.Sin(2*math.Pi*(freq*1.05)*t)
		sample += 0.3 * math.Sin(2*math.Pi*(freq*2.03)*t)
		sample += 0.2 * (noise.Float64()*2 - 1)

		wobble := 0.15 * math.Sin(2*math.Pi*8*t)

		out[i] = 0.5 * sample * envelope * (1 + wobble)
	}
	return out
}
