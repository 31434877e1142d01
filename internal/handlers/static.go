package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/a-h/templ"

	applog "moodquote/internal/log"
	"moodquote/internal/views/pages"
	"moodquote/internal/views/theme"
)

// EntryDocument is the file served for "/".
const EntryDocument = "index.html"

// Assets serves files from root. "/" maps to EntryDocument; when the root has
// no entry document the built-in landing page is rendered instead. Missing
// files, directories, and paths with ".." segments are 404s.
func Assets(root string) http.Handler {
	files := http.Dir(root)
	landing := templ.Handler(pages.Landing(theme.Options(catalog.Moods())))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if containsDotDot(r.URL.Path) {
			applog.Debug(r.Context(), "rejected asset path", "path", r.URL.Path)
			http.NotFound(w, r)
			return
		}

		name := path.Clean("/" + r.URL.Path)
		isEntry := name == "/"
		if isEntry {
			name = "/" + EntryDocument
		}

		f, err := files.Open(name)
		if err != nil {
			if isEntry && errors.Is(err, fs.ErrNotExist) {
				applog.Debug(r.Context(), "entry document missing, rendering landing page", "root", root)
				landing.ServeHTTP(w, r)
				return
			}
			applog.Debug(r.Context(), "asset not found", "path", name, "error", err)
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

func containsDotDot(v string) bool {
	if !strings.Contains(v, "..") {
		return false
	}
	for _, seg := range strings.FieldsFunc(v, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}
