// internal/models/quote.go
package models

import "fmt"

// Speaker count bounds for a quote's answer set.
const (
	MinSpeakers = 4
	MaxSpeakers = 6
)

// QuoteRecord is one guessable quote: the text, the speaker who actually said
// it, the decoy speakers, and per-speaker asset references. Records are
// immutable once built; the catalog validates them at construction.
type QuoteRecord struct {
	ID             string            `json:"id"`
	Text           string            `json:"text"`
	CorrectSpeaker string            `json:"correctSpeaker"`
	Speakers       []string          `json:"speakers"`
	AudioBySpeaker map[string]string `json:"audioBySpeaker"`
	ImageBySpeaker map[string]string `json:"imageBySpeaker,omitempty"`
}

// Validate checks the structural invariants of a record: 4-6 unique speakers,
// the correct speaker present exactly once, and every asset key naming a
// listed speaker.
func (q *QuoteRecord) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quote has no id")
	}
	if q.Text == "" {
		return fmt.Errorf("quote %s has no text", q.ID)
	}
	if len(q.Speakers) < MinSpeakers || len(q.Speakers) > MaxSpeakers {
		return fmt.Errorf("quote %s has %d speakers, want %d-%d", q.ID, len(q.Speakers), MinSpeakers, MaxSpeakers)
	}

	seen := make(map[string]bool, len(q.Speakers))
	correctCount := 0
	for _, s := range q.Speakers {
		if s == "" {
			return fmt.Errorf("quote %s has an empty speaker name", q.ID)
		}
		if seen[s] {
			return fmt.Errorf("quote %s lists speaker %q twice", q.ID, s)
		}
		seen[s] = true
		if s == q.CorrectSpeaker {
			correctCount++
		}
	}
	if correctCount != 1 {
		return fmt.Errorf("quote %s: correct speaker %q must appear exactly once in speakers", q.ID, q.CorrectSpeaker)
	}

	for speaker := range q.AudioBySpeaker {
		if !seen[speaker] {
			return fmt.Errorf("quote %s: audio entry for unknown speaker %q", q.ID, speaker)
		}
	}
	for speaker := range q.ImageBySpeaker {
		if !seen[speaker] {
			return fmt.Errorf("quote %s: image entry for unknown speaker %q", q.ID, speaker)
		}
	}
	return nil
}

// HasSpeaker reports whether name is one of the record's candidate speakers.
func (q *QuoteRecord) HasSpeaker(name string) bool {
	for _, s := range q.Speakers {
		if s == name {
			return true
		}
	}
	return false
}
