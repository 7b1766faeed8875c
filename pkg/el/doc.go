// Package el provides ready-made element flavors on top of the dom package.
//
// Each flavor is a fixed tag name plus preset attributes; none changes the
// rendering behavior of dom.Node. Containers that restrict their children
// (<head>, <table>, <tr>) are small wrapper types whose Append methods only
// accept the permitted child kinds, so structural misuse fails at compile
// time:
//
//	doc := el.NewDocument()
//	doc.Head().Append(el.Title("Welcome"), el.MetaCharset("utf-8"))
//	doc.Body().Append(
//	    el.H1("Welcome"),
//	    el.P("Generated with pagecraft."),
//	)
package el
