package el

import "github.com/pagecraft-dev/pagecraft/pkg/dom"

// Cell is the closed set of elements a table row accepts: Col (<td>) and
// ColHeader (<th>). The unexported method keeps the set sealed.
type Cell interface {
	cellNode() *dom.Node
}

// Col is a <td> table cell. An empty cell still renders an explicit closing
// tag (<td></td>, never <td/>).
type Col struct {
	node *dom.Node
}

// NewCol creates a table cell with optional inline content.
func NewCol(content ...string) *Col {
	return &Col{node: dom.New("td", content...).ForceClose()}
}

// RowSpan sets the rowspan attribute when n is positive.
func (c *Col) RowSpan(n uint) *Col {
	if n > 0 {
		c.node.SetAttributeUint("rowspan", n)
	}
	return c
}

// ColSpan sets the colspan attribute when n is positive.
func (c *Col) ColSpan(n uint) *Col {
	if n > 0 {
		c.node.SetAttributeUint("colspan", n)
	}
	return c
}

// Node returns the underlying dom node.
func (c *Col) Node() *dom.Node { return c.node }

func (c *Col) cellNode() *dom.Node { return c.node }

// ColHeader is a <th> header cell.
type ColHeader struct {
	node *dom.Node
}

// NewColHeader creates a header cell with optional inline content.
func NewColHeader(content ...string) *ColHeader {
	return &ColHeader{node: dom.New("th", content...).ForceClose()}
}

// RowSpan sets the rowspan attribute when n is positive.
func (c *ColHeader) RowSpan(n uint) *ColHeader {
	if n > 0 {
		c.node.SetAttributeUint("rowspan", n)
	}
	return c
}

// ColSpan sets the colspan attribute when n is positive.
func (c *ColHeader) ColSpan(n uint) *ColHeader {
	if n > 0 {
		c.node.SetAttributeUint("colspan", n)
	}
	return c
}

// Node returns the underlying dom node.
func (c *ColHeader) Node() *dom.Node { return c.node }

func (c *ColHeader) cellNode() *dom.Node { return c.node }

// Row is a <tr> element accepting only Col and ColHeader children.
type Row struct {
	node *dom.Node
}

// NewRow creates an empty table row.
func NewRow() *Row {
	return &Row{node: dom.New("tr")}
}

// Append adds cells in call order.
func (r *Row) Append(cells ...Cell) *Row {
	for _, c := range cells {
		r.node.Append(c.cellNode())
	}
	return r
}

// Node returns the underlying dom node.
func (r *Row) Node() *dom.Node { return r.node }

// Table is a <table> element accepting only Row children.
type Table struct {
	node *dom.Node
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{node: dom.New("table")}
}

// Append adds rows in call order.
func (t *Table) Append(rows ...*Row) *Table {
	for _, r := range rows {
		t.node.Append(r.node)
	}
	return t
}

// Node returns the underlying dom node.
func (t *Table) Node() *dom.Node { return t.node }
