// Package dom is a small DOM-like layer over golang.org/x/net/html.
//
// It supports just enough of the browser DOM to fill a page from a row template:
// lookups by id and by tag name, template cloning, text and attribute updates,
// class removal and node removal.
package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Clone makes a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: cloneNode(d.root)}
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the document as HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	html.Render(&buf, d.root)
	return buf.String()
}

// DocumentElement returns the root <html> element.
func (d *Document) DocumentElement() *Element {
	return wrap(findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Html
	}))
}

// Head returns the <head> element.
func (d *Document) Head() *Element {
	return wrap(findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Head
	}))
}

// Lang returns the lang attribute of the root element.
func (d *Document) Lang() string {
	if e := d.DocumentElement(); e != nil {
		lang, _ := e.Attr("lang")
		return lang
	}
	return ""
}

// SetLang sets the lang attribute of the root element.
func (d *Document) SetLang(lang string) {
	if e := d.DocumentElement(); e != nil {
		e.SetAttr("lang", lang)
	}
}

// ElementByID returns the first element that has the id, or nil.
func (d *Document) ElementByID(id string) *Element {
	return wrap(findFirst(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := getAttr(n, "id")
		return ok && v == id
	}))
}

// CreateElement makes a new detached element.
func CreateElement(tag string, attrs ...html.Attribute) *Element {
	return &Element{n: &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
	}}
}

// Element is an element in a Document, or a fragment made by Element.CloneContent.
type Element struct {
	n *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{n: n}
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node {
	return e.n
}

// Tag returns the tag name, or an empty string for a fragment.
func (e *Element) Tag() string {
	if e.n.Type != html.ElementNode {
		return ""
	}
	return e.n.Data
}

// QuerySelector returns the first descendant that has the tag name, or nil.
func (e *Element) QuerySelector(tag string) *Element {
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, matchTag(tag)); found != nil {
			return wrap(found)
		}
	}
	return nil
}

// QuerySelectorAll returns all descendants that have the tag name, in document order.
func (e *Element) QuerySelectorAll(tag string) []*Element {
	var result []*Element
	match := matchTag(tag)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if match(c) {
				result = append(result, wrap(c))
			}
			walk(c)
		}
	}
	walk(e.n)

	return result
}

// Attr returns the attribute value.
func (e *Element) Attr(key string) (string, bool) {
	return getAttr(e.n, key)
}

// SetAttr sets the attribute value, replacing the current value if exists.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: value})
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.n)

	return sb.String()
}

// SetText replaces all children with a text node.
func (e *Element) SetText(s string) {
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// ClassList returns the classes of the element.
func (e *Element) ClassList() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether the element has the class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.ClassList() {
		if c == class {
			return true
		}
	}
	return false
}

// RemoveClass removes the class.
// It does nothing if the element does not have the class.
func (e *Element) RemoveClass(class string) {
	if !e.HasClass(class) {
		return
	}

	var rest []string
	for _, c := range e.ClassList() {
		if c != class {
			rest = append(rest, c)
		}
	}

	e.SetAttr("class", strings.Join(rest, " "))
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	if e.n.Parent != nil {
		e.n.Parent.RemoveChild(e.n)
	}
}

// CloneContent makes a fragment from deep copies of the children.
// For a <template> element it is the template content.
func (e *Element) CloneContent() *Element {
	frag := &html.Node{Type: html.DocumentNode}
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		frag.AppendChild(cloneNode(c))
	}
	return &Element{n: frag}
}

// AppendChild appends child as the last child.
//
// If child is a fragment, its children are moved instead and the fragment becomes empty.
func (e *Element) AppendChild(child *Element) {
	if child.n.Type == html.DocumentNode {
		for c := child.n.FirstChild; c != nil; c = child.n.FirstChild {
			child.n.RemoveChild(c)
			e.n.AppendChild(c)
		}
		return
	}

	child.Remove()
	e.n.AppendChild(child.n)
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	var result []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			result = append(result, wrap(c))
		}
	}
	return result
}

func matchTag(tag string) func(*html.Node) bool {
	tag = strings.ToLower(tag)
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
