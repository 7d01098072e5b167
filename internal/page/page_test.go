package page_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/micahco/dduwash/internal/page"
)

func TestLoad_default(t *testing.T) {
	doc, err := page.Load("")
	if err != nil {
		t.Fatalf("failed to load: %s", err)
	}

	el := doc.ElementByID("live-status")
	if el == nil {
		t.Fatalf("#live-status is missing")
	}
	for _, tag := range []string{"p", "div", "time", "tbody"} {
		if el.QuerySelector(tag) == nil {
			t.Errorf("%s is missing", tag)
		}
	}

	tmpl := doc.ElementByID("status-row")
	if tmpl == nil {
		t.Fatalf("#status-row is missing")
	}
	for _, tag := range []string{"tr", "td", "img", "figcaption"} {
		if tmpl.QuerySelector(tag) == nil {
			t.Errorf("template %s is missing", tag)
		}
	}

	if lang := doc.Lang(); lang != "en" {
		t.Errorf("unexpected lang: %q", lang)
	}
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(`<html lang="es"><body><section id="live-status"></section></body></html>`), 0644); err != nil {
		t.Fatalf("failed to prepare page: %s", err)
	}

	doc, err := page.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %s", err)
	}
	if lang := doc.Lang(); lang != "es" {
		t.Errorf("unexpected lang: %q", lang)
	}

	if _, err := page.Load(filepath.Join(t.TempDir(), "no-such-file.html")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	a := page.Default()
	a[0] = 'x'

	if b := page.Default(); b[0] == 'x' {
		t.Errorf("Default should return a copy")
	}
}
