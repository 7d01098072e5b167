package testutil

import (
	"testing"

	"github.com/micahco/dduwash/internal/dom"
	"github.com/micahco/dduwash/internal/page"
)

// LoadPage parses the built-in status page with the lang attribute.
func LoadPage(t testing.TB, lang string) *dom.Document {
	t.Helper()

	doc, err := page.Load("")
	if err != nil {
		t.Fatalf("failed to load page: %s", err)
	}
	if lang != "" {
		doc.SetLang(lang)
	}
	return doc
}

// ParsePage parses a page for tests.
func ParsePage(t testing.TB, s string) *dom.Document {
	t.Helper()

	doc, err := dom.ParseString(s)
	if err != nil {
		t.Fatalf("failed to parse page: %s", err)
	}
	return doc
}
