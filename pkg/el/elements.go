package el

import "github.com/pagecraft-dev/pagecraft/pkg/dom"

// Text content elements

func P(content string) *dom.Node    { return dom.New("p", content) }
func Div(content ...string) *dom.Node { return dom.New("div", content...) }
func Span(content string) *dom.Node { return dom.New("span", content) }
func H1(content string) *dom.Node   { return dom.New("h1", content) }
func H2(content string) *dom.Node   { return dom.New("h2", content) }
func H3(content string) *dom.Node   { return dom.New("h3", content) }
func Br() *dom.Node                 { return dom.New("br") }

// Inline text semantics

func B(content string) *dom.Node      { return dom.New("b", content) }
func I(content string) *dom.Node      { return dom.New("i", content) }
func Strong(content string) *dom.Node { return dom.New("strong", content) }
func Mark(content string) *dom.Node   { return dom.New("mark", content) }

// A creates a hyperlink with the given content and href.
func A(content, href string) *dom.Node {
	return dom.New("a", content).SetAttribute("href", href)
}

// Time creates a <time> element with the machine-readable datetime value.
func Time(content, datetime string) *dom.Node {
	return dom.New("time", content).SetAttribute("datetime", datetime)
}

// Img creates an image element. Width and height (in that order) are
// emitted only when positive.
func Img(src, alt string, dims ...uint) *dom.Node {
	n := dom.New("img").SetAttribute("src", src).SetAttribute("alt", alt)
	if len(dims) > 0 && dims[0] > 0 {
		n.SetAttributeUint("width", dims[0])
	}
	if len(dims) > 1 && dims[1] > 0 {
		n.SetAttributeUint("height", dims[1])
	}
	return n
}

// Lists

// List creates an <ol> when ordered is true, otherwise a <ul>.
func List(ordered bool) *dom.Node {
	if ordered {
		return dom.New("ol")
	}
	return dom.New("ul")
}

func Li(content ...string) *dom.Node { return dom.New("li", content...) }

// Semantic containers

func Header() *dom.Node  { return dom.New("header") }
func Footer() *dom.Node  { return dom.New("footer") }
func Main() *dom.Node    { return dom.New("main") }
func Nav() *dom.Node     { return dom.New("nav") }
func Section() *dom.Node { return dom.New("section") }
func Article() *dom.Node { return dom.New("article") }
func Aside() *dom.Node   { return dom.New("aside") }
func Figure() *dom.Node  { return dom.New("figure") }

func FigCaption(content string) *dom.Node { return dom.New("figcaption", content) }

// Details creates a <details> element, expanded by default when open is
// true (rendered as a name-only attribute).
func Details(open ...bool) *dom.Node {
	n := dom.New("details")
	if len(open) > 0 && open[0] {
		n.SetAttribute("open", "")
	}
	return n
}

func Summary(content string) *dom.Node { return dom.New("summary", content) }
