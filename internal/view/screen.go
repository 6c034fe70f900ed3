// internal/view/screen.go
package view

import (
	"fmt"

	"github.com/hearsay-games/hearsay/internal/models"
)

// Screen identifies one of the game view's screens.
type Screen string

const (
	ScreenCategorySelect Screen = "categorySelect"
	ScreenLoading        Screen = "loading"
	ScreenPlaying        Screen = "playing"
	ScreenResult         Screen = "result"
	ScreenLeaderboard    Screen = "leaderboard"
	ScreenError          Screen = "error"
)

// Descriptor declares the elements a screen needs before it can be shown.
// The reconciler creates whatever is missing instead of assuming the surface
// survived untouched since the last transition.
type Descriptor struct {
	Screen   Screen
	Elements []string
}

var descriptors = map[Screen]Descriptor{
	ScreenCategorySelect: {ScreenCategorySelect, []string{"category-grid", "score-badge", "leaderboard-button"}},
	ScreenLoading:        {ScreenLoading, []string{"spinner"}},
	ScreenPlaying:        {ScreenPlaying, []string{"quote-text", "speaker-grid", "countdown"}},
	ScreenResult:         {ScreenResult, []string{"outcome", "points", "play-again-button", "next-category-button"}},
	ScreenLeaderboard:    {ScreenLeaderboard, []string{"ranking-list", "back-button"}},
	ScreenError:          {ScreenError, []string{"error-message", "retry-button"}},
}

// DescriptorFor returns the element requirements for a screen.
func DescriptorFor(s Screen) Descriptor {
	return descriptors[s]
}

// Surface is the rendering port the controller drives. Implementations are
// free to be a DOM, a terminal, or a test double.
type Surface interface {
	// Has reports whether the named element currently exists.
	Has(element string) bool
	// Create builds the named element. Called only for missing elements.
	Create(element string) error
	// Show makes the screen visible with the given view model.
	Show(screen Screen, model interface{})
	// UpdateCountdown refreshes the remaining-seconds display while playing.
	UpdateCountdown(remaining int)
}

// EnsureReady reconciles the surface against a screen's descriptor, creating
// any missing elements. It returns an error only when an element cannot be
// rebuilt, which the controller surfaces as a recoverable error screen.
func EnsureReady(s Surface, screen Screen) error {
	desc := DescriptorFor(screen)
	for _, el := range desc.Elements {
		if s.Has(el) {
			continue
		}
		if err := s.Create(el); err != nil {
			return fmt.Errorf("rebuild %s for screen %s: %w", el, screen, err)
		}
	}
	return nil
}

// View models handed to Surface.Show per screen.

type CategorySelectModel struct {
	Categories []string
	Identity   string
	Score      int
}

type PlayingModel struct {
	Category  string
	Quote     models.QuoteRecord
	Remaining int
}

type ResultModel struct {
	Correct   bool
	TimedOut  bool
	Selection string
	Speaker   string
	Points    int
	Score     int
}

type LeaderboardModel struct {
	Rows []BoardRow
}

type ErrorModel struct {
	Message string
}
