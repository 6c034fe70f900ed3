// internal/catalog/quotes.go
package catalog

import "github.com/hearsay-games/hearsay/internal/models"

var builtinCategories = []string{"Music", "Politics", "Movies", "History", "Sports", "Academia"}

// builtinQuotes holds the shipped quote set. Asset paths are opaque; the
// session host resolves them to loadable URLs before sending them to a view.
var builtinQuotes = map[string][]models.QuoteRecord{
	"Movies": {
		{
			ID:             "movies",
			Text:           "It does not do to dwell on dreams and forget to live.",
			CorrectSpeaker: "Harry Potter",
			Speakers: []string{
				"Alex DeLarge", "Darth Vader", "Don Corleone",
				"Harry Potter", "Jules Winnfield", "Robocop",
			},
			AudioBySpeaker: map[string]string{
				"Alex DeLarge":    "audio/movies/alex-delarge_movies.wav",
				"Darth Vader":     "audio/movies/darth-vader_movies.wav",
				"Don Corleone":    "audio/movies/don-corleone_movies.wav",
				"Harry Potter":    "audio/movies/harry-potter_movies.wav",
				"Jules Winnfield": "audio/movies/jules-winnfield_movies.wav",
				"Robocop":         "audio/movies/robocop_movies.wav",
			},
			ImageBySpeaker: map[string]string{
				"Alex DeLarge":    "images/movies/alex-delarge_movies.jpg",
				"Darth Vader":     "images/movies/darth-vader_movies.jpg",
				"Don Corleone":    "images/movies/don-corleone_movies.jpg",
				"Harry Potter":    "images/movies/harry-potter_movies.jpg",
				"Jules Winnfield": "images/movies/jules-winnfield_movies.jpg",
				"Robocop":         "images/movies/robocop_movies.jpg",
			},
		},
	},
	"Music": {
		{
			ID:             "music",
			Text:           "A lot of people don't appreciate the moment until it's passed.",
			CorrectSpeaker: "Ye",
			Speakers: []string{
				"Drake", "John Lennon", "Psy", "Rick Rubin", "Snoop Dogg", "Ye",
			},
			AudioBySpeaker: map[string]string{
				"Drake":       "audio/music/drake_music.wav",
				"John Lennon": "audio/music/john-lennon_music.wav",
				"Psy":         "audio/music/psy_music.wav",
				"Rick Rubin":  "audio/music/rick-rubin_music.wav",
				"Snoop Dogg":  "audio/music/snoop-dogg_music.wav",
				"Ye":          "audio/music/ye_music.wav",
			},
			ImageBySpeaker: map[string]string{
				"Drake":       "images/music/drake_music.jpg",
				"John Lennon": "images/music/john-lennon_music.jpg",
				"Psy":         "images/music/psy_music.jpg",
				"Rick Rubin":  "images/music/rick-rubin_music.jpg",
				"Snoop Dogg":  "images/music/snoop-dogg_music.jpg",
				"Ye":          "images/music/ye_music.jpg",
			},
		},
	},
	"Politics": {
		{
			ID:             "politics",
			Text:           "A majority has no right to vote away the rights of a minority.",
			CorrectSpeaker: "Ayn Rand",
			Speakers: []string{
				"Ayn Rand", "Bernie Sanders", "Donald Trump",
				"George W Bush", "Richard Nixon", "Xi Jinping",
			},
			AudioBySpeaker: map[string]string{
				"Ayn Rand":       "audio/politics/ayn-rand_politics.wav",
				"Bernie Sanders": "audio/politics/bernie-sanders_politics.wav",
				"Donald Trump":   "audio/politics/donald-trump_politics.wav",
				"George W Bush":  "audio/politics/george-w-bush_politics.wav",
				"Richard Nixon":  "audio/politics/richard-nixon_politics.wav",
				"Xi Jinping":     "audio/politics/xi-jinping_politics.wav",
			},
			ImageBySpeaker: map[string]string{
				"Ayn Rand":       "images/politics/ayn-rand_politics.jpg",
				"Bernie Sanders": "images/politics/bernie-sanders_politics.jpg",
				"Donald Trump":   "images/politics/donald-trump_politics.jpg",
				"George W Bush":  "images/politics/george-w-bush_politics.jpg",
				"Richard Nixon":  "images/politics/richard-nixon_politics.jpg",
				"Xi Jinping":     "images/politics/xi-jinping_politics.jpg",
			},
		},
	},
	"History": {
		{
			ID:             "history",
			Text:           "Do not compare yourself to others, if you do so you are insulting yourself.",
			CorrectSpeaker: "Adolf Hitler",
			Speakers: []string{
				"Adolf Hitler", "Jesus Christ", "Julius Ceasar",
				"Napoleon Bonaparte", "Neil Armstrong", "Sam Bankman Fried",
			},
			AudioBySpeaker: map[string]string{
				"Adolf Hitler":       "audio/history/adolf-hitler_history.wav",
				"Jesus Christ":       "audio/history/jesus-christ_history.wav",
				"Julius Ceasar":      "audio/history/julius-ceasar_history.wav",
				"Napoleon Bonaparte": "audio/history/napoleon-bonaparte_history.wav",
				"Neil Armstrong":     "audio/history/neil-armstrong_history.wav",
				"Sam Bankman Fried":  "audio/history/sam-bankman-fried_history.wav",
			},
			ImageBySpeaker: map[string]string{
				"Adolf Hitler":       "images/history/adolf-hitler_history.jpg",
				"Jesus Christ":       "images/history/jesus-christ_history.jpg",
				"Julius Ceasar":      "images/history/julius-ceasar_history.jpg",
				"Napoleon Bonaparte": "images/history/napoleon-bonaparte_history.jpg",
				"Neil Armstrong":     "images/history/neil-armstrong_history.jpg",
				"Sam Bankman Fried":  "images/history/sam-bankman-fried_history.jpg",
			},
		},
	},
	"Sports": {
		{
			ID:             "sports",
			Text:           "I know what I need to do to win and I'm just really focussed on that.",
			CorrectSpeaker: "Usain Bolt",
			Speakers: []string{
				"Conor McGregor", "Cristiano Ronaldo", "David Beckham",
				"Messi", "Usain Bolt", "Yusuf Dikeç",
			},
			AudioBySpeaker: map[string]string{
				"Conor McGregor":    "audio/sports/conor-mcgregor_sports.wav",
				"Cristiano Ronaldo": "audio/sports/cristiano-ronaldo_sports.wav",
				"David Beckham":     "audio/sports/david-beckham_sports.wav",
				"Messi":             "audio/sports/messi_sports.wav",
				"Usain Bolt":        "audio/sports/usain-bolt_sports.wav",
				"Yusuf Dikeç":       "audio/sports/yusuf-dikec_sports.wav",
			},
			ImageBySpeaker: map[string]string{
				"Conor McGregor":    "images/sports/conor-mcgregor_sports.jpg",
				"Cristiano Ronaldo": "images/sports/cristiano-ronaldo_sports.jpg",
				"David Beckham":     "images/sports/david-beckham_sports.jpg",
				"Messi":             "images/sports/messi_sports.jpg",
				"Usain Bolt":        "images/sports/usain-bolt_sports.jpg",
				"Yusuf Dikeç":       "images/sports/yusuf-dikec_sports.jpg",
			},
		},
	},
	"Academia": {
		{
			ID:             "academia",
			Text:           "A scientist in his laboratory is not only a technician, he is also a child.",
			CorrectSpeaker: "Marie Curie",
			Speakers: []string{
				"Albert Einstein", "Da Vinci", "He Jiankui",
				"Jensen Huang", "Marie Curie", "Oppenheimer",
			},
			AudioBySpeaker: map[string]string{
				"Albert Einstein": "audio/academia/albert-einstein_academia.wav",
				"Da Vinci":        "audio/academia/da-vinci_academia.wav",
				"He Jiankui":      "audio/academia/he-jiankui_academia.wav",
				"Jensen Huang":    "audio/academia/jensen-huang_academia.wav",
				"Marie Curie":     "audio/academia/marie-curie_academia.wav",
				"Oppenheimer":     "audio/academia/oppenheimer_academia.wav",
			},
			ImageBySpeaker: map[string]string{
				"Albert Einstein": "images/academia/albert-einstein_academia.jpg",
				"Da Vinci":        "images/academia/da-vinci_academia.jpg",
				"He Jiankui":      "images/academia/he-jiankui_academia.jpg",
				"Jensen Huang":    "images/academia/jensen-huang_academia.jpg",
				"Marie Curie":     "images/academia/marie-curie_academia.jpg",
				"Oppenheimer":     "images/academia/oppenheimer_academia.jpg",
			},
		},
	},
}
