// internal/view/round.go
package view

import "github.com/hearsay-games/hearsay/internal/models"

// RoundSeconds is the countdown length for every round.
const RoundSeconds = 20

// Points awards more for faster answers: max(5, ceil(remaining/2)+5).
// For a 20 second round the range is [5, 15].
func Points(remainingSeconds int) int {
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	p := (remainingSeconds+1)/2 + 5
	if p < 5 {
		p = 5
	}
	return p
}

// RoundState is the owned state of the one active round. Exactly one round
// exists per controller at a time; a new round replaces it wholesale.
type RoundState struct {
	Category  string
	Quote     models.QuoteRecord
	Remaining int

	Resolved  bool
	Selection string
	Correct   bool
	TimedOut  bool
	Points    int
}

func newRound(category string, quote models.QuoteRecord) *RoundState {
	return &RoundState{
		Category:  category,
		Quote:     quote,
		Remaining: RoundSeconds,
	}
}

// resolve closes the round with a selection outcome. It is a no-op on an
// already resolved round so a late timer and a click can never both score.
func (r *RoundState) resolve(selection string) bool {
	if r.Resolved {
		return false
	}
	r.Resolved = true
	r.Selection = selection
	r.Correct = selection != "" && selection == r.Quote.CorrectSpeaker
	if r.Correct {
		r.Points = Points(r.Remaining)
	}
	return true
}

// timeout closes the round as an incorrect, zero-point result.
func (r *RoundState) timeout() bool {
	if r.Resolved {
		return false
	}
	r.Resolved = true
	r.TimedOut = true
	return true
}
