package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"moodquote/internal/views/theme"
)

// Landing renders the built-in entry document used when the asset root does
// not provide an index.html. It offers one button per mood and loads the
// client controller from /script.js.
func Landing(options []theme.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		background := theme.Resolve(string(theme.DefaultKey)).Gradient
		if _, err := fmt.Fprintf(w, landingHead, templ.EscapeString(background)); err != nil {
			return err
		}
		for _, opt := range options {
			mood := templ.EscapeString(opt.Mood.String())
			if _, err := fmt.Fprintf(w,
				`<button type="button" class="mood" data-mood="%s">%s %s</button>`,
				mood, templ.EscapeString(opt.Emoji), mood,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, landingTail)
		return err
	})
}

const landingHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Mood Quote</title>
<style>:root{--bg:%s}body{margin:0;min-height:100vh;background:var(--bg);font-family:system-ui,sans-serif;display:flex;align-items:center;justify-content:center}main{text-align:center;max-width:40rem;padding:2rem}.mood{margin:.25rem;padding:.5rem 1rem;border:0;border-radius:999px;cursor:pointer}</style>
</head>
<body>
<main data-state="idle">
<div id="emoji">✨</div>
<p id="quote">Pick a mood to get a quote.</p>
<nav>`

const landingTail = `</nav>
</main>
<script src="/script.js"></script>
</body>
</html>
`
