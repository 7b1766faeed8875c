package dom

import (
	"bytes"
	"io"
	"sort"
	"strings"
)

// IndentWidth is the number of spaces added per nesting level.
const IndentWidth = 2

// Render serializes the tree rooted at n to w, starting at the given
// indentation depth (in spaces). Rendering does not mutate the tree.
//
// Each node is emitted in three ordered phases: the opening tag with its
// attributes in lexicographic name order, the inline content followed by
// the children at indent+IndentWidth, and the closing tag. An element with
// no content, no children, and no forced closing tag self-closes on a
// single line.
func (n *Node) Render(w io.Writer, indent int) error {
	if err := n.renderOpen(w, indent); err != nil {
		return err
	}
	if err := n.renderContent(w, indent); err != nil {
		return err
	}
	return n.renderClose(w, indent)
}

// String renders the tree to a string at indentation depth zero.
func (n *Node) String() string {
	var buf bytes.Buffer
	n.Render(&buf, 0) // writes to a bytes.Buffer cannot fail
	return buf.String()
}

// renderOpen emits the opening tag and decides its line terminator: no
// newline when inline content or a forced closing tag follows, a newline
// before indented children, or a self-close for bare void elements.
func (n *Node) renderOpen(w io.Writer, indent int) error {
	if n.Tag == "" {
		return nil
	}

	var b strings.Builder
	writeIndent(&b, indent)
	b.WriteByte('<')
	b.WriteString(n.Tag)

	for _, name := range n.attributeNames() {
		b.WriteByte(' ')
		b.WriteString(name)
		if value := n.attrs[name]; value != "" {
			b.WriteString(`="`)
			b.WriteString(value)
			b.WriteByte('"')
		}
	}

	switch {
	case n.Content != "":
		b.WriteByte('>')
	case n.forceClose:
		b.WriteByte('>')
	case len(n.Children) > 0:
		b.WriteString(">\n")
	default:
		b.WriteString("/>\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderContent emits the inline content on the opening tag's line, then
// the children, each managing its own open/content/close cycle one level
// deeper. For a text leaf it emits the indented content line instead.
func (n *Node) renderContent(w io.Writer, indent int) error {
	if n.Tag == "" {
		var b strings.Builder
		writeIndent(&b, indent)
		b.WriteString(n.Content)
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	}

	if n.Content != "" {
		if _, err := io.WriteString(w, n.Content); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := child.Render(w, indent+IndentWidth); err != nil {
			return err
		}
	}
	return nil
}

// renderClose emits the closing tag for every element that had content,
// children, or a forced closing tag. The closing tag is re-indented only
// when children were rendered, so it lines up with the opening tag.
func (n *Node) renderClose(w io.Writer, indent int) error {
	if n.Tag == "" {
		return nil
	}

	var b strings.Builder
	if len(n.Children) > 0 {
		writeIndent(&b, indent)
	}
	if n.Content != "" || len(n.Children) > 0 || n.forceClose {
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteString(">\n")
	}
	if b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// attributeNames returns the attribute names in lexicographic order.
func (n *Node) attributeNames() []string {
	if len(n.attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteByte(' ')
	}
}
