// internal/models/session.go
package models

// AnonIdentity is the sentinel handle used when the identity provider fails
// or reports no current player.
const AnonIdentity = "anon"

// PlayerSession is the authoritative per-player state owned by the session
// host: a stable identity handle and the persisted score.
type PlayerSession struct {
	Identity string `json:"identity"`
	Score    int    `json:"score"`
}

// LeaderboardEntry is one row of the leaderboard. The value is a display
// cache; the authoritative score lives in the score store.
type LeaderboardEntry struct {
	Identity string `json:"identity"`
	Score    int    `json:"score"`
}
