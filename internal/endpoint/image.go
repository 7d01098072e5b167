package endpoint

import (
	"net/http"
	"path"

	"github.com/micahco/dduwash/internal/journal"
)

// ImageEndpoint serves the status icons under /img/.
func ImageEndpoint(logger journal.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Base(r.URL.Path)
		if path.Ext(name) != ".svg" {
			NotFoundEndpoint()(w, r)
			return
		}

		b, err := images.ReadFile("static/img/" + name)
		if err != nil {
			NotFoundEndpoint()(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, err = w.Write(b)
		handleError(logger, "img", err)
	}
}
