package theme

import (
	"strings"

	"moodquote/internal/quote"
)

// Entry contains the display primitives applied for a mood.
type Entry struct {
	Mood     quote.Mood
	Emoji    string
	Gradient string
}

const (
	// DefaultEmoji is shown for moods without a registered entry.
	DefaultEmoji = "✨"
	// DefaultKey names the entry whose gradient backs unknown moods.
	DefaultKey = quote.Happy
)

var catalogue = map[quote.Mood]Entry{
	quote.Happy: {
		Mood:     quote.Happy,
		Emoji:    "😊",
		Gradient: "linear-gradient(to right, #ffecd2, #fcb69f)",
	},
	quote.Sad: {
		Mood:     quote.Sad,
		Emoji:    "😢",
		Gradient: "linear-gradient(to right, #a1c4fd, #c2e9fb)",
	},
	quote.Angry: {
		Mood:     quote.Angry,
		Emoji:    "😡",
		Gradient: "linear-gradient(to right, #f857a6, #ff5858)",
	},
	quote.Chill: {
		Mood:     quote.Chill,
		Emoji:    "😌",
		Gradient: "linear-gradient(to right, #a8edea, #fed6e3)",
	},
	quote.Romantic: {
		Mood:     quote.Romantic,
		Emoji:    "😍",
		Gradient: "linear-gradient(to right, #fbc2eb, #a6c1ee)",
	},
}

// Resolve returns the registered entry for the provided mood. Unknown moods
// keep their name but get the default emoji and the default gradient.
func Resolve(mood string) Entry {
	normalized := quote.Mood(strings.ToLower(mood))
	if value, ok := catalogue[normalized]; ok {
		return value
	}
	return Entry{
		Mood:     normalized,
		Emoji:    DefaultEmoji,
		Gradient: catalogue[DefaultKey].Gradient,
	}
}

// Known reports whether a theme entry exists for the mood.
func Known(mood quote.Mood) bool {
	_, ok := catalogue[mood]
	return ok
}

// Options exposes the entries for the given moods, in order, for rendering
// a mood picker.
func Options(moods []quote.Mood) []Entry {
	out := make([]Entry, 0, len(moods))
	for _, m := range moods {
		out = append(out, Resolve(m.String()))
	}
	return out
}
