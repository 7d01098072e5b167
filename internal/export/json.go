package export

import (
	"io"

	"github.com/goccy/go-json"
)

// ToJSON writes rows as an indented JSON array.
func ToJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
