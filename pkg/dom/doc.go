// Package dom provides the in-memory markup tree and its serializer.
//
// A single Node type represents every kind of markup node: container
// elements, void elements, and raw text leaves. Trees are built bottom-up
// with chained builder calls and serialized in one depth-first pass to
// indented, human-readable HTML.
//
// # Building Trees
//
// Every builder method returns its receiver so construction reads like the
// resulting markup:
//
//	div := dom.New("div").
//	    Class("card").
//	    Append(dom.New("p", "Hello")).
//	    Append(dom.New("p", "World"))
//
// A Node must be appended to at most one parent; the tree is a strict
// ownership hierarchy and sharing a node between parents produces
// duplicated output.
//
// # Rendering
//
// Render walks the tree once and writes indented markup:
//
//	err := div.Render(os.Stdout, 0)
//
// Attributes are always emitted in lexicographic name order, so output is
// deterministic regardless of the order SetAttribute was called in.
//
// # Escaping
//
// Content and attribute values are emitted verbatim. Callers are
// responsible for supplying markup-safe strings; characters such as '<',
// '>', '&' and '"' are not escaped.
package dom
