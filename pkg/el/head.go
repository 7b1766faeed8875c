package el

import "github.com/pagecraft-dev/pagecraft/pkg/dom"

// HeadChild wraps an element permitted inside <head>. Only the Title,
// Style, Script, Meta, MetaCharset, LinkRel, and Base constructors produce
// one, which keeps the accepted-child set closed at compile time.
type HeadChild struct {
	node *dom.Node
}

// Node returns the underlying dom node.
func (c HeadChild) Node() *dom.Node { return c.node }

// Title creates the <title> element.
func Title(content string) HeadChild {
	return HeadChild{dom.New("title", content)}
}

// Style creates a <style> element holding inline CSS.
func Style(css string) HeadChild {
	return HeadChild{dom.New("style", css)}
}

// Script creates a <script> element. src may be empty for a purely inline
// script; content may be omitted for an external one.
func Script(src string, content ...string) HeadChild {
	n := dom.New("script", content...)
	if src != "" {
		n.SetAttribute("src", src)
	}
	return HeadChild{n}
}

// Meta creates a <meta> element with name and content attributes.
func Meta(name, content string) HeadChild {
	n := dom.New("meta").
		SetAttribute("name", name).
		SetAttribute("content", content)
	return HeadChild{n}
}

// MetaCharset creates a <meta charset="..."> element.
func MetaCharset(charset string) HeadChild {
	return HeadChild{dom.New("meta").SetAttribute("charset", charset)}
}

// LinkRel creates a <link> element referencing an external resource. typ
// may be omitted.
func LinkRel(rel, href string, typ ...string) HeadChild {
	n := dom.New("link").
		SetAttribute("rel", rel).
		SetAttribute("href", href)
	if len(typ) > 0 && typ[0] != "" {
		n.SetAttribute("type", typ[0])
	}
	return HeadChild{n}
}

// Base creates the <base> element fixing the document base URL. target may
// be omitted.
func Base(content, href string, target ...string) HeadChild {
	n := dom.New("base", content).SetAttribute("href", href)
	if len(target) > 0 && target[0] != "" {
		n.SetAttribute("target", target[0])
	}
	return HeadChild{n}
}

// Head is the document <head> container. Its Append only accepts the
// HeadChild set.
type Head struct {
	node *dom.Node
}

// NewHead creates an empty <head> container.
func NewHead() *Head {
	return &Head{node: dom.New("head")}
}

// Append adds head children in call order.
func (h *Head) Append(children ...HeadChild) *Head {
	for _, c := range children {
		h.node.Append(c.node)
	}
	return h
}

// Node returns the underlying dom node.
func (h *Head) Node() *dom.Node { return h.node }
