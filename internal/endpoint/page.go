package endpoint

import (
	"net/http"

	"github.com/micahco/dduwash/internal/board"
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/dom"
	"github.com/micahco/dduwash/internal/journal"
)

// RequestLanguage picks the language of the page for the request.
//
// The lang query parameter wins, then the Accept-Language header.
// If neither names a supported language, fallback is used.
func RequestLanguage(r *http.Request, fallback string) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return descriptor.MatchLanguage(lang)
	}
	if lang, ok := descriptor.NegotiateLanguage(r.Header.Get("Accept-Language")); ok {
		return lang
	}
	return descriptor.MatchLanguage(fallback)
}

// PageEndpoint renders the status page for each request.
//
// A page that failed to render is still sent in its loading state,
// with 503 status and without caching.
func PageEndpoint(s Store, page *dom.Document, table descriptor.Table, logger journal.Logger) http.HandlerFunc {
	b := board.New(s, table, logger)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		doc := page.Clone()
		lang := RequestLanguage(r, doc.Lang())
		doc.SetLang(lang)

		o := b.Render(r.Context(), board.HTML(doc))

		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.Header().Set("Content-Language", lang)
		w.Header().Set("Vary", "Accept-Language")
		if o.OK() {
			w.Header().Set("Cache-Control", "public, max-age=60")
		} else {
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		if r.Method == http.MethodHead {
			return
		}
		handleError(logger, "page", doc.Render(w))
	}
}
