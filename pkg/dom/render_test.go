package dom

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderExact(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "inline content",
			node: New("p", "Hello"),
			want: "<p>Hello</p>\n",
		},
		{
			name: "bare void element self-closes",
			node: New("br"),
			want: "<br/>\n",
		},
		{
			name: "forced closing tag stays on one line",
			node: New("td").ForceClose(),
			want: "<td></td>\n",
		},
		{
			name: "forced closing tag with content",
			node: New("td", "cell").ForceClose(),
			want: "<td>cell</td>\n",
		},
		{
			name: "self-close with attributes",
			node: New("img").SetAttribute("src", "a.png").SetAttribute("alt", "a"),
			want: `<img alt="a" src="a.png"/>` + "\n",
		},
		{
			name: "attributes in lexicographic order",
			node: New("input").SetAttribute("name", "x").SetAttribute("type", "text"),
			want: `<input name="x" type="text"/>` + "\n",
		},
		{
			name: "attribute order independent of call order",
			node: New("input").SetAttribute("type", "text").SetAttribute("name", "x"),
			want: `<input name="x" type="text"/>` + "\n",
		},
		{
			name: "empty attribute value emits name only",
			node: New("input").SetAttribute("checked", "").SetAttribute("type", "checkbox"),
			want: `<input checked type="checkbox"/>` + "\n",
		},
		{
			name: "children on indented lines",
			node: New("div").Append(New("p", "A"), New("p", "B")),
			want: "<div>\n  <p>A</p>\n  <p>B</p>\n</div>\n",
		},
		{
			name: "nested children indent per level",
			node: New("div").Append(New("div").Append(New("p", "deep"))),
			want: "<div>\n  <div>\n    <p>deep</p>\n  </div>\n</div>\n",
		},
		{
			name: "text leaf renders verbatim line",
			node: Text("plain text"),
			want: "plain text\n",
		},
		{
			name: "appended text becomes indented line",
			node: New("div").AppendText("inside"),
			want: "<div>\n  inside\n</div>\n",
		},
		{
			name: "content and children share the opening line",
			node: New("div", "inline").Append(New("p", "A")),
			want: "<div>inline  <p>A</p>\n</div>\n",
		},
		{
			name: "unescaped content passes through",
			node: New("p", "a < b & c"),
			want: "<p>a < b & c</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAtIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := New("p", "x").Render(&buf, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "    <p>x</p>\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderChildOrderMatchesAppendOrder(t *testing.T) {
	node := New("ol").Append(
		New("li", "first"),
		New("li", "second"),
		New("li", "third"),
	)

	lines := strings.Split(strings.TrimSuffix(node.String(), "\n"), "\n")
	want := []string{"<ol>", "<li>first</li>", "<li>second</li>", "<li>third</li>", "</ol>"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if strings.TrimLeft(lines[i], " ") != w {
			t.Errorf("line %d = %q, want %q", i, strings.TrimLeft(lines[i], " "), w)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	node := New("div").SetAttribute("id", "a").Append(New("p", "x"))
	first := node.String()
	second := node.String()
	if first != second {
		t.Errorf("render not repeatable: %q then %q", first, second)
	}
}

// failWriter fails after n successful writes.
type failWriter struct {
	n int
}

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errWrite
	}
	f.n--
	return len(p), nil
}

var errWrite = &writeError{}

type writeError struct{}

func (*writeError) Error() string { return "write failed" }

func TestRenderPropagatesWriteError(t *testing.T) {
	node := New("div").Append(New("p", "A"), New("p", "B"))

	for n := 0; n < 4; n++ {
		if err := node.Render(&failWriter{n: n}, 0); err == nil {
			t.Errorf("writer failing at write %d: expected error, got nil", n)
		}
	}
}
