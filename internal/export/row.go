// Package export converts a status list into files for people and other tools.
package export

import (
	"time"

	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/lib-bay"
)

// Row is a bay in exported files.
type Row struct {
	BayID     string     `json:"bay_id"`
	Status    bay.Status `json:"status"`
	Name      string     `json:"status_name"`
	Label     string     `json:"label"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Rows converts results into Rows with the labels of lang.
// Label is empty for an unknown status.
func Rows(results []bay.Result, table descriptor.Table, lang string) []Row {
	rows := make([]Row, len(results))
	for i, r := range results {
		var label string
		if e, err := table.Lookup(r.Status, lang); err == nil {
			label = e.Text
		}

		rows[i] = Row{
			BayID:     string(r.BayID),
			Status:    r.Status,
			Name:      r.Status.String(),
			Label:     label,
			UpdatedAt: r.UpdatedAt().UTC(),
		}
	}
	return rows
}

// Map converts the Row into a value for jq queries.
func (r Row) Map() map[string]any {
	return map[string]any{
		"bay_id":      r.BayID,
		"status":      int(r.Status),
		"status_name": r.Name,
		"label":       r.Label,
		"updated_at":  r.UpdatedAt.Format(time.RFC3339),
		"timestamp":   int(r.UpdatedAt.Unix()),
	}
}

// Maps converts rows by Row.Map.
func Maps(rows []Row) []any {
	ms := make([]any, len(rows))
	for i, r := range rows {
		ms[i] = r.Map()
	}
	return ms
}
