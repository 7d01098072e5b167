package endpoint

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/micahco/dduwash/internal/journal"
	"github.com/micahco/dduwash/lib-bay"
)

// StatusJSONEndpoint replies the latest status list in the same format as the upstream API.
// So a browser, or another dduwash, can use this server as the API.
func StatusJSONEndpoint(s Store, logger journal.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET")

		enc := json.NewEncoder(w)

		results, err := s.Fetch(r.Context())
		if err != nil {
			w.Header().Set("Cache-Control", "no-store")
			if errors.Is(err, bay.ErrStale) {
				w.WriteHeader(http.StatusUnprocessableEntity)
			} else {
				w.WriteHeader(http.StatusServiceUnavailable)
			}
			handleError(logger, "status.json", enc.Encode(map[string]string{"error": err.Error()}))
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=60")
		handleError(logger, "status.json", enc.Encode(results))
	}
}
