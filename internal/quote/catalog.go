// Package quote holds the compiled-in mood catalog and the random pick over it.
package quote

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// Mood identifies one of the fixed emotional categories.
type Mood string

const (
	Happy    Mood = "happy"
	Sad      Mood = "sad"
	Angry    Mood = "angry"
	Chill    Mood = "chill"
	Romantic Mood = "romantic"
)

// ErrNotFound reports a lookup for a mood the catalog does not know.
var ErrNotFound = errors.New("quote: mood not found")

var moodOrder = []Mood{Happy, Sad, Angry, Chill, Romantic}

var defaultEntries = map[Mood][]string{
	Happy: {
		"Happiness is not something ready made. It comes from your own actions.",
		"The most wasted of all days is one without laughter.",
		"Keep your face always toward the sunshine, and shadows will fall behind you.",
	},
	Sad: {
		"Tears come from the heart and not from the brain.",
		"Every life has a measure of sorrow. Sometimes this is what awakens us.",
		"The word 'happy' would lose its meaning if it were not balanced by sadness.",
	},
	Angry: {
		"For every minute you are angry you lose sixty seconds of peace of mind.",
		"Speak when you are angry and you will make the best speech you will ever regret.",
		"Anger is an acid that can do more harm to the vessel in which it is stored.",
	},
	Chill: {
		"Almost everything will work again if you unplug it for a few minutes, including you.",
		"Nature does not hurry, yet everything is accomplished.",
		"Sometimes the most productive thing you can do is relax.",
	},
	Romantic: {
		"You know you're in love when you can't fall asleep because reality is better than your dreams.",
		"Whatever our souls are made of, his and mine are the same.",
		"I have waited for this opportunity for more than half a century, to repeat to you once again my vow.",
	},
}

// Picker returns an index in [0, n). Implementations must be safe for concurrent use.
type Picker func(n int) int

// Catalog is an immutable mapping from Mood to its candidate quotes.
type Catalog struct {
	entries map[Mood][]string
	pick    Picker
}

var defaultCatalog = &Catalog{entries: defaultEntries, pick: rand.IntN}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog
}

// WithPicker returns a copy of the catalog that draws indices from pick.
func (c *Catalog) WithPicker(pick Picker) *Catalog {
	if pick == nil {
		pick = rand.IntN
	}
	return &Catalog{entries: c.entries, pick: pick}
}

// ParseMood lowercases raw input and reports whether it names a known mood.
// Surrounding whitespace is not stripped, so " happy" is unknown.
func ParseMood(raw string) (Mood, bool) {
	m := Mood(strings.ToLower(raw))
	_, ok := defaultEntries[m]
	return m, ok
}

// Lookup returns one quote drawn uniformly at random for the given mood.
// Unknown moods yield ErrNotFound.
func (c *Catalog) Lookup(raw string) (string, error) {
	m := Mood(strings.ToLower(raw))
	quotes, ok := c.entries[m]
	if !ok || len(quotes) == 0 {
		return "", ErrNotFound
	}
	return quotes[c.pick(len(quotes))], nil
}

// Quotes returns a copy of the candidate list for m, or nil when m is unknown.
func (c *Catalog) Quotes(m Mood) []string {
	quotes, ok := c.entries[m]
	if !ok {
		return nil
	}
	return append([]string(nil), quotes...)
}

// Moods lists the catalog moods in display order.
func (c *Catalog) Moods() []Mood {
	out := make([]Mood, 0, len(c.entries))
	for _, m := range moodOrder {
		if _, ok := c.entries[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (m Mood) String() string {
	return string(m)
}
