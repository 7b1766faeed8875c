package dom

// Shorthand setters for the attributes every element commonly carries.

// ID sets the id attribute.
func (n *Node) ID(id string) *Node { return n.SetAttribute("id", id) }

// Class sets the class attribute.
func (n *Node) Class(class string) *Node { return n.SetAttribute("class", class) }

// Style sets the style attribute.
func (n *Node) Style(style string) *Node { return n.SetAttribute("style", style) }

// Title sets the title attribute.
func (n *Node) Title(title string) *Node { return n.SetAttribute("title", title) }
