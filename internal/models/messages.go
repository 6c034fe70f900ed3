// internal/models/messages.go
package models

import "encoding/json"

// Host -> view message types.
const (
	MsgInitialData     = "initialData"
	MsgGameData        = "gameData"
	MsgLeaderboardData = "leaderboardData"
)

// View -> host message types.
const (
	MsgViewReady        = "viewReady"
	MsgReadyForGameData = "readyForGameData"
	MsgCategorySelected = "categorySelected"
	MsgRoundResolved    = "roundResolved"
	MsgPlayAgain        = "playAgain"
)

// HostMessage is the envelope for messages pushed from the session host to
// the game view.
type HostMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// InitialData carries the player's identity and current score.
type InitialData struct {
	Identity string `json:"identity"`
	Score    int    `json:"score"`
}

// GameData carries the quote payload for a round. Asset references inside the
// quote are already resolved to loadable URLs by the host.
type GameData struct {
	Category string      `json:"category"`
	Quote    QuoteRecord `json:"quote"`
}

// ViewMessage is the envelope for messages sent from the game view to the
// session host. Data is decoded per Type.
type ViewMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// CategorySelectedData is the payload of a categorySelected message.
type CategorySelectedData struct {
	Category string `json:"category"`
}

// RoundResolvedData is the payload of a roundResolved message. Selection is
// empty when the round timed out with no pick.
type RoundResolvedData struct {
	Selection    string `json:"selection,omitempty"`
	Correct      bool   `json:"correct"`
	PointsEarned int    `json:"pointsEarned"`
}
