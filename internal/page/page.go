// Package page provides the status page that the board renders into.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/micahco/dduwash/internal/dom"
)

//go:embed index.html
var defaultPage []byte

// Default returns the built-in status page.
func Default() []byte {
	return append([]byte(nil), defaultPage...)
}

// Load parses the page at path, or the built-in page if path is empty.
func Load(path string) (*dom.Document, error) {
	if path == "" {
		return dom.Parse(bytes.NewReader(defaultPage))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", path, err)
	}
	return doc, nil
}
