package el

import "github.com/pagecraft-dev/pagecraft/pkg/dom"

// Form creates a <form> element with an optional action URL.
func Form(action ...string) *dom.Node {
	n := dom.New("form")
	if len(action) > 0 && action[0] != "" {
		n.SetAttribute("action", action[0])
	}
	return n
}

// Input is an <input> element with typed, chainable attribute setters.
type Input struct {
	node *dom.Node
}

// NewInput creates an input. Empty type, name, or value strings are
// skipped. Most callers use the typed constructors (InputText, InputRadio,
// ...) instead.
func NewInput(typ, name, value string) *Input {
	n := dom.New("input")
	if typ != "" {
		n.SetAttribute("type", typ)
	}
	if name != "" {
		n.SetAttribute("name", name)
	}
	if value != "" {
		n.SetAttribute("value", value)
	}
	return &Input{node: n}
}

// Node returns the underlying dom node.
func (in *Input) Node() *dom.Node { return in.node }

// SetAttribute sets an arbitrary attribute, overwriting any existing value.
func (in *Input) SetAttribute(name, value string) *Input {
	in.node.SetAttribute(name, value)
	return in
}

// SetAttributeUint sets an attribute to the decimal form of value.
func (in *Input) SetAttributeUint(name string, value uint) *Input {
	in.node.SetAttributeUint(name, value)
	return in
}

func (in *Input) ID(id string) *Input       { return in.SetAttribute("id", id) }
func (in *Input) Class(class string) *Input { return in.SetAttribute("class", class) }
func (in *Input) Style(style string) *Input { return in.SetAttribute("style", style) }
func (in *Input) Title(title string) *Input { return in.SetAttribute("title", title) }

func (in *Input) Size(size uint) *Input           { return in.SetAttributeUint("size", size) }
func (in *Input) MaxLength(n uint) *Input         { return in.SetAttributeUint("maxlength", n) }
func (in *Input) Placeholder(text string) *Input  { return in.SetAttribute("placeholder", text) }
func (in *Input) Min(min string) *Input           { return in.SetAttribute("min", min) }
func (in *Input) MinUint(min uint) *Input         { return in.SetAttributeUint("min", min) }
func (in *Input) Max(max string) *Input           { return in.SetAttribute("max", max) }
func (in *Input) MaxUint(max uint) *Input         { return in.SetAttributeUint("max", max) }

// Checked marks the input checked. Passing false is a no-op so the call can
// stay in a builder chain.
func (in *Input) Checked(checked ...bool) *Input {
	if len(checked) == 0 || checked[0] {
		in.node.SetAttribute("checked", "")
	}
	return in
}

func (in *Input) AutoComplete() *Input { return in.SetAttribute("autocomplete", "") }
func (in *Input) AutoFocus() *Input    { return in.SetAttribute("autofocus", "") }
func (in *Input) Disabled() *Input     { return in.SetAttribute("disabled", "") }
func (in *Input) ReadOnly() *Input     { return in.SetAttribute("readonly", "") }
func (in *Input) Required() *Input     { return in.SetAttribute("required", "") }

// Typed input constructors.

func InputText(name string, value ...string) *Input   { return typedInput("text", name, value) }
func InputRadio(name string, value ...string) *Input  { return typedInput("radio", name, value) }
func InputCheckbox(name string, value ...string) *Input {
	return typedInput("checkbox", name, value)
}
func InputNumber(name string, value ...string) *Input { return typedInput("number", name, value) }
func InputRange(name string, value ...string) *Input  { return typedInput("range", name, value) }
func InputDate(name string, value ...string) *Input   { return typedInput("date", name, value) }
func InputTime(name string, value ...string) *Input   { return typedInput("time", name, value) }
func InputEmail(name string, value ...string) *Input  { return typedInput("email", name, value) }
func InputURL(name string, value ...string) *Input    { return typedInput("url", name, value) }

func InputPassword(name string) *Input { return NewInput("password", name, "") }

// InputSubmit creates a submit button; name may be omitted.
func InputSubmit(value string, name ...string) *Input {
	n := ""
	if len(name) > 0 {
		n = name[0]
	}
	return NewInput("submit", n, value)
}

// InputReset creates a reset button.
func InputReset(value string) *Input { return NewInput("reset", "", value) }

// InputList creates an input bound to a <datalist> by id.
func InputList(name, list string) *Input {
	return NewInput("", name, "").SetAttribute("list", list)
}

func typedInput(typ, name string, value []string) *Input {
	v := ""
	if len(value) > 0 {
		v = value[0]
	}
	return NewInput(typ, name, v)
}

// TextArea is a <textarea> element. It always renders an explicit closing
// tag.
type TextArea struct {
	node *dom.Node
}

// NewTextArea creates a textarea with the given name. Cols and rows are
// emitted only when positive.
func NewTextArea(name string, cols, rows uint) *TextArea {
	n := dom.New("textarea").ForceClose().SetAttribute("name", name)
	if cols > 0 {
		n.SetAttributeUint("cols", cols)
	}
	if rows > 0 {
		n.SetAttributeUint("rows", rows)
	}
	return &TextArea{node: n}
}

// MaxLength sets the maxlength attribute.
func (t *TextArea) MaxLength(n uint) *TextArea {
	t.node.SetAttributeUint("maxlength", n)
	return t
}

// Node returns the underlying dom node.
func (t *TextArea) Node() *dom.Node { return t.node }

// Select creates a <select> element with the given name, to fill with
// Option children.
func Select(name string) *dom.Node {
	return dom.New("select").SetAttribute("name", name)
}

// DataList creates a <datalist> element with the given id, to pair with
// InputList.
func DataList(id string) *dom.Node {
	return dom.New("datalist").SetAttribute("id", id)
}

// Option is an <option> element for Select and DataList. An empty option
// still renders an explicit closing tag.
type Option struct {
	node *dom.Node
}

// NewOption creates an option with the given value and optional visible
// content.
func NewOption(value string, content ...string) *Option {
	return &Option{node: dom.New("option", content...).ForceClose().SetAttribute("value", value)}
}

// Selected marks the option selected. Passing false is a no-op so the call
// can stay in a builder chain.
func (o *Option) Selected(selected ...bool) *Option {
	if len(selected) == 0 || selected[0] {
		o.node.SetAttribute("selected", "")
	}
	return o
}

// Node returns the underlying dom node.
func (o *Option) Node() *dom.Node { return o.node }
