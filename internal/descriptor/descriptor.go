// Package descriptor holds the fixed table that maps a status code to an icon and display texts.
package descriptor

import (
	"github.com/micahco/dduwash/internal/bayerr"
	"github.com/micahco/dduwash/lib-bay"
)

// Descriptor is the fixed presentation of a status.
type Descriptor struct {
	// Image is the URL of the status icon.
	Image string

	// Alt and Text map a language code to the alternative text of the icon and the caption.
	// Both are nil in a plain table.
	Alt  map[string]string
	Text map[string]string

	// Label is the caption in a plain table.
	Label string
}

// Entry is a Descriptor resolved for a language.
type Entry struct {
	Image string
	Alt   string
	Text  string
}

// Table is an immutable list of Descriptors indexed by status code.
type Table struct {
	descriptors []Descriptor
	localized   bool
}

// Localized is the table with English and Spanish texts.
var Localized = Table{
	localized: true,
	descriptors: []Descriptor{
		bay.StatusEmpty: {
			Image: "/img/green.svg",
			Alt:   map[string]string{"en": "green circle", "es": "círculo verde"},
			Text:  map[string]string{"en": "Empty", "es": "Vacío"},
		},
		bay.StatusOccupied: {
			Image: "/img/red.svg",
			Alt:   map[string]string{"en": "red circle", "es": "círculo rojo"},
			Text:  map[string]string{"en": "Occupied", "es": "Ocupado"},
		},
		bay.StatusMaintenance: {
			Image: "/img/yellow.svg",
			Alt:   map[string]string{"en": "yellow circle", "es": "círculo amarillo"},
			Text:  map[string]string{"en": "Maintenance", "es": "Mantenimiento"},
		},
	},
}

// Plain is the table with English captions only, and without alternative texts.
var Plain = Table{
	descriptors: []Descriptor{
		bay.StatusEmpty:       {Image: "/img/green.svg", Label: "Empty"},
		bay.StatusOccupied:    {Image: "/img/red.svg", Label: "Occupied"},
		bay.StatusMaintenance: {Image: "/img/yellow.svg", Label: "Maintenance"},
	},
}

// IsLocalized reports whether the table has per-language texts.
func (t Table) IsLocalized() bool {
	return t.localized
}

// Images returns the icon URLs in order of status code.
func (t Table) Images() []string {
	result := make([]string, len(t.descriptors))
	for i, d := range t.descriptors {
		result[i] = d.Image
	}
	return result
}

// Lookup resolves the Descriptor of the status for the language.
//
// A status out of the table is ErrUnknownStatus.
// The language is matched by MatchLanguage, so it never yields an empty text.
func (t Table) Lookup(s bay.Status, lang string) (Entry, error) {
	if int(s) < 0 || int(s) >= len(t.descriptors) {
		return Entry{}, bayerr.New(bay.ErrUnknownStatus, nil, "unknown status code: %d", int(s))
	}

	d := t.descriptors[s]
	if !t.localized {
		return Entry{Image: d.Image, Text: d.Label}, nil
	}

	key := MatchLanguage(lang)
	return Entry{
		Image: d.Image,
		Alt:   d.Alt[key],
		Text:  d.Text[key],
	}, nil
}
