// Package endpoint is the HTTP interface of the server mode.
package endpoint

import (
	"embed"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/dom"
	"github.com/micahco/dduwash/internal/journal"
	"github.com/micahco/dduwash/lib-bay"
)

//go:embed static/img/*.svg
var images embed.FS

//go:embed static/not-found.html
var notFoundPage []byte

// Store is the source of the status list.
// *store.Store implements it.
type Store interface {
	bay.Fetcher

	Errors() (healthy bool, messages []string)
}

// New makes the handler of the server.
// page is cloned for each request, and is never modified.
func New(s Store, page *dom.Document, table descriptor.Table, logger journal.Logger) http.Handler {
	m := http.NewServeMux()

	m.HandleFunc("/img/", ImageEndpoint(logger))

	m.HandleFunc("/status.json", StatusJSONEndpoint(s, logger))
	m.HandleFunc("/healthz", HealthzEndpoint(s))
	m.Handle("/mcp", MCPHandler(s, table))

	page404 := NotFoundEndpoint()
	pageEndpoint := PageEndpoint(s, page, table, logger)
	m.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/index.html":
			pageEndpoint(w, r)
		default:
			page404(w, r)
		}
	})

	return gziphandler.GzipHandler(m)
}

// NotFoundEndpoint replies the not found page.
func NotFoundEndpoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write(notFoundPage)
	}
}

func handleError(l journal.Logger, scope string, err error) {
	if err != nil {
		l.WithTarget("endpoint:"+scope).Failure(err.Error(), nil)
	}
}
