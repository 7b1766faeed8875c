package el

import (
	"bytes"
	"io"

	"github.com/pagecraft-dev/pagecraft/pkg/dom"
)

// Document is the top-level <html> node, constructed with exactly one
// <head> and one <body> child so neither can be omitted. Content is added
// through the Head and Body accessors rather than by appending to the root.
type Document struct {
	root *dom.Node
	head *Head
	body *dom.Node
}

// NewDocument creates a document with its fixed head and body containers.
func NewDocument() *Document {
	head := NewHead()
	body := dom.New("body")
	root := dom.New("html").Append(head.node, body)
	return &Document{root: root, head: head, body: body}
}

// Head returns the document head container.
func (d *Document) Head() *Head { return d.head }

// Body returns the document body.
func (d *Document) Body() *dom.Node { return d.body }

// SetAttribute sets an attribute on the <html> element itself. The root's
// children stay fixed to the head and body containers; only its attributes
// are settable.
func (d *Document) SetAttribute(name, value string) *Document {
	d.root.SetAttribute(name, value)
	return d
}

// Lang sets the document language, e.g. Lang("en").
func (d *Document) Lang(lang string) *Document {
	return d.SetAttribute("lang", lang)
}

// Render writes the doctype line followed by the whole tree.
func (d *Document) Render(w io.Writer) error {
	if _, err := io.WriteString(w, "<!doctype html>\n"); err != nil {
		return err
	}
	return d.root.Render(w, 0)
}

// String renders the document to a string.
func (d *Document) String() string {
	var buf bytes.Buffer
	d.Render(&buf)
	return buf.String()
}
