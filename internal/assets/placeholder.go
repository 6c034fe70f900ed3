// internal/assets/placeholder.go
package assets

import (
	"fmt"
	"net/url"
	"strings"
)

// ColorFor derives a stable HSL color from a name. The same name always maps
// to the same hue, so placeholder portraits do not flicker between renders.
func ColorFor(name string) string {
	var hash int32
	for _, r := range name {
		hash = int32(r) + (hash << 5) - hash
	}
	hue := int(hash) % 360
	if hue < 0 {
		hue += 360
	}
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", hue)
}

// Initials returns up to two uppercase initials for a display name.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		initials = append(initials, []rune(strings.ToUpper(string(runes[0])))...)
		if len(initials) >= 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return string(initials)
}

// PlaceholderPortrait renders a square SVG portrait of the speaker's initials
// over their deterministic color, returned as a data URI so views can use it
// anywhere an image URL is expected.
func PlaceholderPortrait(name string) string {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="96" height="96">`+
			`<rect width="96" height="96" fill="%s"/>`+
			`<text x="48" y="48" dominant-baseline="central" text-anchor="middle" `+
			`font-family="sans-serif" font-size="36" fill="white">%s</text></svg>`,
		ColorFor(name), Initials(name),
	)
	return "data:image/svg+xml;utf8," + url.PathEscape(svg)
}
