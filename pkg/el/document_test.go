package el

import (
	"strings"
	"testing"
)

func TestEmptyDocument(t *testing.T) {
	doc := NewDocument()

	want := "<!doctype html>\n" +
		"<html>\n" +
		"  <head/>\n" +
		"  <body/>\n" +
		"</html>\n"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocumentHeadAndBody(t *testing.T) {
	doc := NewDocument()
	doc.Head().Append(
		Title("Welcome"),
		MetaCharset("utf-8"),
	)
	doc.Body().Append(
		H1("Welcome"),
		P("Hello"),
	)

	want := "<!doctype html>\n" +
		"<html>\n" +
		"  <head>\n" +
		"    <title>Welcome</title>\n" +
		"    <meta charset=\"utf-8\"/>\n" +
		"  </head>\n" +
		"  <body>\n" +
		"    <h1>Welcome</h1>\n" +
		"    <p>Hello</p>\n" +
		"  </body>\n" +
		"</html>\n"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocumentRootAttributes(t *testing.T) {
	doc := NewDocument()
	doc.Lang("en").SetAttribute("data-theme", "dark")

	if !strings.Contains(doc.String(), `<html data-theme="dark" lang="en">`) {
		t.Errorf("missing root attributes: %q", doc.String())
	}
}

func TestHeadChildren(t *testing.T) {
	tests := []struct {
		name  string
		child HeadChild
		want  string
	}{
		{"title", Title("T"), "<title>T</title>\n"},
		{"style", Style("body { margin: 0; }"), "<style>body { margin: 0; }</style>\n"},
		{"external script", Script("/app.js"), "<script src=\"/app.js\"/>\n"},
		{"inline script", Script("", "init();"), "<script>init();</script>\n"},
		{"meta", Meta("viewport", "width=device-width"), "<meta content=\"width=device-width\" name=\"viewport\"/>\n"},
		{"meta charset", MetaCharset("utf-8"), "<meta charset=\"utf-8\"/>\n"},
		{"link", LinkRel("stylesheet", "/main.css", "text/css"), "<link href=\"/main.css\" rel=\"stylesheet\" type=\"text/css\"/>\n"},
		{"link without type", LinkRel("icon", "/favicon.ico"), "<link href=\"/favicon.ico\" rel=\"icon\"/>\n"},
		{"base", Base("", "https://example.com/", "_blank"), "<base href=\"https://example.com/\" target=\"_blank\"/>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.child.Node().String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadAppendOrder(t *testing.T) {
	head := NewHead().
		Append(MetaCharset("utf-8")).
		Append(Title("T"), LinkRel("stylesheet", "/main.css"))

	node := head.Node()
	want := []string{"meta", "title", "link"}
	if len(node.Children) != len(want) {
		t.Fatalf("len(Children) = %d, want %d", len(node.Children), len(want))
	}
	for i, w := range want {
		if node.Children[i].Tag != w {
			t.Errorf("Children[%d].Tag = %q, want %q", i, node.Children[i].Tag, w)
		}
	}
}
