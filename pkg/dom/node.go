package dom

import "strconv"

// Node is the universal markup tree node.
//
// A Node with a non-empty Tag is a markup element. A Node with an empty Tag
// is a pure text leaf: it must have no attributes and no children, and its
// Content is emitted verbatim at the current indentation level.
type Node struct {
	// Tag is the element name ("div", "table", ...), empty for text leaves.
	Tag string

	// Content is the inline text emitted immediately after the opening tag.
	Content string

	// Children are rendered after Content, each on its own indented line,
	// in append order.
	Children []*Node

	attrs      map[string]string
	forceClose bool
}

// New creates an element node with the given tag and optional inline
// content. At most one content string is used.
func New(tag string, content ...string) *Node {
	n := &Node{Tag: tag}
	if len(content) > 0 {
		n.Content = content[0]
	}
	return n
}

// Text creates a pure text leaf. Its content is emitted verbatim with no
// surrounding tags.
func Text(content string) *Node {
	return &Node{Content: content}
}

// SetAttribute sets the named attribute, overwriting any existing value.
// An empty value renders the attribute name-only (boolean style, e.g.
// "checked"). Neither name nor value is escaped or validated.
func (n *Node) SetAttribute(name, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	return n
}

// SetAttributeUint sets the named attribute to the decimal form of value.
func (n *Node) SetAttributeUint(name string, value uint) *Node {
	return n.SetAttribute(name, strconv.FormatUint(uint64(value), 10))
}

// Attribute returns the current value of the named attribute and whether it
// is set.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Append adds child nodes, preserving call order as render order. Each
// child must not already belong to another parent.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// AppendText wraps text in an anonymous text leaf and appends it.
func (n *Node) AppendText(text string) *Node {
	return n.Append(Text(text))
}

// ForceClose marks the node as requiring an explicit closing tag even when
// it has no content and no children (e.g. <td></td>, never <td/>).
func (n *Node) ForceClose() *Node {
	n.forceClose = true
	return n
}
