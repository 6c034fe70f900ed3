// internal/handlers/api.go
package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"github.com/hearsay-games/hearsay/internal/audio"
	"github.com/hearsay-games/hearsay/internal/cache"
	"github.com/hearsay-games/hearsay/internal/catalog"
	"github.com/hearsay-games/hearsay/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// LeaderboardHandler serves the current standings sorted by score descending.
func LeaderboardHandler(logger *logrus.Logger, scores cache.ScoreStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := scores.All(r.Context())
		if err != nil {
			logger.Warnf("leaderboard read failed: %v", err)
			writeJSON(w, http.StatusOK, []models.LeaderboardEntry{})
			return
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Score > entries[j].Score
		})
		if entries == nil {
			entries = []models.LeaderboardEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// CategoryInfo is one row of the categories listing.
type CategoryInfo struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// CategoriesHandler lists the playable categories for the select screen.
func CategoriesHandler(quotes *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := quotes.Categories()
		out := make([]CategoryInfo, 0, len(names))
		for _, name := range names {
			out = append(out, CategoryInfo{Name: name, Emoji: catalog.Emoji(name)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// CueAudioHandler serves the synthesized feedback cues as WAV files, e.g.
// GET /audio/cue/correct.wav. No audio assets are shipped; every cue is
// rendered from the same synthesis the game uses.
func CueAudioHandler(player *audio.Player) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/audio/cue/")
		name = strings.TrimSuffix(name, ".wav")

		wav := player.CueWAV(audio.Cue(name))
		if wav == nil {
			http.Error(w, "unknown cue", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "audio/wav")
		_, _ = w.Write(wav)
	}
}

// ShareQRHandler generates a PNG QR code pointing at the game URL so players
// can pass the session around a room.
func ShareQRHandler(logger *logrus.Logger, shareURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := shareURL
		if url == "" {
			// Fall back to the serving host (respecting X-Forwarded-Proto).
			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}
			if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
				scheme = proto
			}
			url = scheme + "://" + r.Host + "/"
		}

		const qrSize = 320
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			logger.Warnf("qr generation failed for %s: %v", url, err)
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

// Routes mounts every HTTP endpoint onto mux.
func Routes(mux *http.ServeMux, logger *logrus.Logger, vs *ViewServer, shareURL string) {
	mux.HandleFunc("/view/ws", ViewWSHandler(logger, vs))
	mux.HandleFunc("/leaderboard", LeaderboardHandler(logger, vs.Scores))
	mux.HandleFunc("/categories", CategoriesHandler(vs.Quotes))
	mux.HandleFunc("/audio/cue/", CueAudioHandler(vs.Cues))
	mux.HandleFunc("/share/qr", ShareQRHandler(logger, shareURL))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
