package board

import (
	"fmt"

	"github.com/micahco/dduwash/internal/dom"
	"golang.org/x/net/html"
)

// Document is the DOM access that the board needs.
type Document interface {
	// ElementByID returns the element, or nil if not found.
	ElementByID(id string) Element

	// Lang returns the declared language of the document.
	Lang() string

	// Preload hints the page to fetch the image before it is shown.
	Preload(href string)
}

// Element is an element, or a fragment cloned from a template.
type Element interface {
	// QuerySelector returns the first descendant with the tag name, or nil.
	QuerySelector(tag string) Element

	SetText(text string)
	SetAttr(key, value string)
	RemoveClass(class string)
	Remove()

	// CloneContent returns a deep copy of the children as a fragment.
	CloneContent() Element

	// AppendChild appends the child, or the children of a fragment.
	AppendChild(child Element)
}

// HTML adapts a parsed HTML document to Document.
func HTML(doc *dom.Document) Document {
	return htmlDocument{doc: doc}
}

type htmlDocument struct {
	doc *dom.Document
}

func (d htmlDocument) ElementByID(id string) Element {
	return wrapElement(d.doc.ElementByID(id))
}

func (d htmlDocument) Lang() string {
	return d.doc.Lang()
}

func (d htmlDocument) Preload(href string) {
	head := d.doc.Head()
	if head == nil {
		return
	}

	for _, l := range head.QuerySelectorAll("link") {
		rel, _ := l.Attr("rel")
		v, _ := l.Attr("href")
		if rel == "preload" && v == href {
			return
		}
	}

	head.AppendChild(dom.CreateElement(
		"link",
		html.Attribute{Key: "rel", Val: "preload"},
		html.Attribute{Key: "as", Val: "image"},
		html.Attribute{Key: "href", Val: href},
	))
}

type htmlElement struct {
	e *dom.Element
}

func wrapElement(e *dom.Element) Element {
	if e == nil {
		return nil
	}
	return htmlElement{e: e}
}

func (e htmlElement) QuerySelector(tag string) Element {
	return wrapElement(e.e.QuerySelector(tag))
}

func (e htmlElement) SetText(text string) {
	e.e.SetText(text)
}

func (e htmlElement) SetAttr(key, value string) {
	e.e.SetAttr(key, value)
}

func (e htmlElement) RemoveClass(class string) {
	e.e.RemoveClass(class)
}

func (e htmlElement) Remove() {
	e.e.Remove()
}

func (e htmlElement) CloneContent() Element {
	return wrapElement(e.e.CloneContent())
}

func (e htmlElement) AppendChild(child Element) {
	c, ok := child.(htmlElement)
	if !ok {
		panic(fmt.Sprintf("board: can not append %T to an HTML element", child))
	}
	e.e.AppendChild(c.e)
}
