// internal/view/leaderboard.go
package view

import (
	"sort"

	"github.com/hearsay-games/hearsay/internal/models"
)

// BoardRow is one rendered leaderboard line. Rank is 0 for the placeholder
// row appended when the acting player is missing from the received standings.
type BoardRow struct {
	Rank     int
	Identity string
	Score    int
	Self     bool
}

// Board caches the last leaderboardData received from the host so the
// leaderboard screen can open instantly, independent of round state.
type Board struct {
	entries []models.LeaderboardEntry
}

func (b *Board) Update(entries []models.LeaderboardEntry) {
	b.entries = append(b.entries[:0:0], entries...)
}

// Rows returns the display rows: sorted by score descending with ties kept
// in received order, and the acting player always present exactly once.
func (b *Board) Rows(self string, selfScore int) []BoardRow {
	sorted := append([]models.LeaderboardEntry(nil), b.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	rows := make([]BoardRow, 0, len(sorted)+1)
	found := false
	for i, e := range sorted {
		row := BoardRow{Rank: i + 1, Identity: e.Identity, Score: e.Score}
		if e.Identity == self {
			row.Self = true
			found = true
		}
		rows = append(rows, row)
	}
	if !found {
		rows = append(rows, BoardRow{Identity: self, Score: selfScore, Self: true})
	}
	return rows
}
