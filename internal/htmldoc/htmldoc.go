// Package htmldoc loads a saved listing page from disk and adapts the parsed
// tree to the capability interface the extractor consumes. Saved pages are
// not always UTF-8, so the loader sniffs the encoding before parsing.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/stayscan/stayscan/internal/extract"
)

// Document is a parsed listing page. It satisfies extract.Tree.
type Document struct {
	doc *goquery.Document
}

// Load reads and parses the document at path. This is the only fatal failure
// point of a pass: an unreadable or unparsable file aborts, everything past
// this degrades field by field.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes raw markup into a queryable document, converting from the
// sniffed source encoding when it is not UTF-8.
func Parse(raw []byte) (*Document, error) {
	enc, name, _ := charset.DetermineEncoding(raw, "")
	var r io.Reader = bytes.NewReader(raw)
	if enc != nil && name != "utf-8" {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Select returns all elements matching the selector in document order.
func (d *Document) Select(selector string) []extract.Node {
	return nodesOf(d.doc, d.doc.Find(selector))
}

// element is a read-only handle on one element of the tree.
type element struct {
	doc *goquery.Document
	sel *goquery.Selection
}

func (e element) Select(selector string) []extract.Node {
	return nodesOf(e.doc, e.sel.Find(selector))
}

func (e element) SelectFirst(selector string) (extract.Node, bool) {
	first := e.sel.Find(selector).First()
	if first.Length() == 0 {
		return nil, false
	}
	return element{doc: e.doc, sel: first}, true
}

// Following walks the document in preorder starting just past this element
// and returns the first node matching the selector. This mirrors how the
// detail panels relate to their rows: association by position in the
// document, not by containment.
func (e element) Following(selector string) (extract.Node, bool) {
	self := e.sel.Get(0)
	if self == nil {
		return nil, false
	}
	matched := e.doc.Find(selector)
	index := make(map[*html.Node]int, matched.Length())
	for i, n := range matched.Nodes {
		index[n] = i
	}
	for n := nextInOrder(self); n != nil; n = nextInOrder(n) {
		if i, ok := index[n]; ok {
			return element{doc: e.doc, sel: matched.Eq(i)}, true
		}
	}
	return nil, false
}

// Text returns the visible text of the subtree with whitespace collapsed.
func (e element) Text() string {
	return strings.Join(strings.Fields(e.sel.Text()), " ")
}

func (e element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// nodesOf splits a multi-node selection into per-node handles, preserving
// document order.
func nodesOf(doc *goquery.Document, sel *goquery.Selection) []extract.Node {
	out := make([]extract.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, element{doc: doc, sel: s})
	})
	return out
}

// nextInOrder is the preorder successor: first child if any, otherwise the
// next sibling of the nearest ancestor that has one.
func nextInOrder(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
