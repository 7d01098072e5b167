// Package board fills the live status widget of a page.
//
// Render runs one linear routine: preload the icons, resolve the elements,
// fetch the status list, add a row per bay, set the last updated time and reveal the table.
// Any failure leaves the widget in its loading state; it is reported in the Outcome and the journal.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/micahco/dduwash/internal/bayerr"
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/journal"
	"github.com/micahco/dduwash/lib-bay"
)

const (
	// ContainerID is the id of the status widget.
	ContainerID = "live-status"

	// TemplateID is the id of the <template> of a table row.
	TemplateID = "status-row"

	// HiddenClass is removed from the table container to reveal it.
	HiddenClass = "hidden"
)

// Board renders the status list into a Document.
type Board struct {
	Fetcher bay.Fetcher
	Table   descriptor.Table

	// Location is the time zone of the visible last updated time.
	Location *time.Location

	// Preload adds preload hints for the status icons.
	Preload bool

	Logger journal.Logger
}

// New makes a Board in the Pacific time zone.
// The icons are preloaded if the table is localized.
func New(f bay.Fetcher, table descriptor.Table, logger journal.Logger) *Board {
	return &Board{
		Fetcher:  f,
		Table:    table,
		Location: Pacific,
		Preload:  table.IsLocalized(),
		Logger:   logger,
	}
}

type handles struct {
	loading  Element
	content  Element
	time     Element
	tbody    Element
	template Element
}

func missing(what string) error {
	return bayerr.New(bay.ErrMissingElement, nil, "Missing HTMLElement: %s", what)
}

func resolve(doc Document) (handles, error) {
	el := doc.ElementByID(ContainerID)
	if el == nil {
		return handles{}, missing("#" + ContainerID)
	}

	h := handles{
		loading:  el.QuerySelector("p"),
		content:  el.QuerySelector("div"),
		time:     el.QuerySelector("time"),
		tbody:    el.QuerySelector("tbody"),
		template: doc.ElementByID(TemplateID),
	}

	switch {
	case h.loading == nil:
		return handles{}, missing("#" + ContainerID + " p")
	case h.content == nil:
		return handles{}, missing("#" + ContainerID + " div")
	case h.time == nil:
		return handles{}, missing("#" + ContainerID + " time")
	case h.tbody == nil:
		return handles{}, missing("#" + ContainerID + " tbody")
	case h.template == nil:
		return handles{}, missing("#" + TemplateID)
	}

	row := h.template.CloneContent()
	for _, tag := range []string{"td", "img", "figcaption"} {
		if row.QuerySelector(tag) == nil {
			return handles{}, missing("#" + TemplateID + " " + tag)
		}
	}

	return h, nil
}

// Render fills the document with the latest status list.
//
// Render never panics and never returns an error to the caller.
// A failure is reported as an Outcome with StateFailed; the document is left in its loading state.
func (b *Board) Render(ctx context.Context, doc Document) (o Outcome) {
	l := b.Logger.WithTarget("board:render").With("run_id", uuid.NewString()).StartTimer()

	defer func() {
		if r := recover(); r != nil {
			o = Outcome{
				State: StateFailed,
				Err:   bayerr.New(ErrRender, fmt.Errorf("%v", r), "panic while rendering"),
			}
		}
		b.report(l, o)
	}()

	rows, updated, err := b.render(ctx, doc)
	if err != nil {
		return Outcome{State: StateFailed, Err: err}
	}

	return Outcome{
		State:     StateRendered,
		Rows:      rows,
		UpdatedAt: updated,
	}
}

func (b *Board) report(l journal.Logger, o Outcome) {
	if o.OK() {
		l.Healthy(
			fmt.Sprintf("rendered %d bays updated %s", o.Rows, humanize.Time(o.UpdatedAt)),
			map[string]interface{}{
				"rows":       o.Rows,
				"updated_at": o.UpdatedAt.UTC().Format(time.RFC3339),
			},
		)
	} else {
		l.Failure(o.Err.Error(), map[string]interface{}{
			"kind": o.Kind().Error(),
		})
	}
}

func (b *Board) render(ctx context.Context, doc Document) (int, time.Time, error) {
	if b.Preload {
		for _, img := range b.Table.Images() {
			doc.Preload(img)
		}
	}

	h, err := resolve(doc)
	if err != nil {
		return 0, time.Time{}, err
	}

	results, err := b.Fetcher.Fetch(ctx)
	if err != nil {
		return 0, time.Time{}, err
	}
	if len(results) == 0 {
		return 0, time.Time{}, bayerr.New(bay.ErrNoResults, nil, "No results")
	}

	lang := doc.Lang()
	entries := make([]descriptor.Entry, len(results))
	for i, r := range results {
		entries[i], err = b.Table.Lookup(r.Status, lang)
		if err != nil {
			return 0, time.Time{}, bayerr.New(bay.ErrUnknownStatus, err, "bay %s", r.BayID)
		}
	}

	for i, r := range results {
		b.renderRow(h, r, entries[i])
	}

	updated := results[0].UpdatedAt()
	b.renderTime(h, updated)

	reveal(h)

	return len(results), updated, nil
}

func (b *Board) renderRow(h handles, r bay.Result, e descriptor.Entry) {
	clone := h.template.CloneContent()

	clone.QuerySelector("td").SetText(string(r.BayID))

	img := clone.QuerySelector("img")
	img.SetAttr("src", e.Image)
	if b.Table.IsLocalized() {
		img.SetAttr("alt", e.Alt)
	}

	clone.QuerySelector("figcaption").SetText(e.Text)

	h.tbody.AppendChild(clone)
}

func (b *Board) renderTime(h handles, t time.Time) {
	loc := b.Location
	if loc == nil {
		loc = Pacific
	}

	iso, clock := FormatTimestamp(t, loc)
	h.time.SetAttr("datetime", iso)
	h.time.SetText(clock)
}

func reveal(h handles) {
	h.loading.Remove()
	h.content.RemoveClass(HiddenClass)
	h.content.SetAttr("aria-hidden", "false")
}
