package el

import "testing"

func TestSimpleElements(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"p", P("Hello").String(), "<p>Hello</p>\n"},
		{"h1", H1("Title").String(), "<h1>Title</h1>\n"},
		{"span", Span("x").String(), "<span>x</span>\n"},
		{"strong", Strong("x").String(), "<strong>x</strong>\n"},
		{"mark", Mark("x").String(), "<mark>x</mark>\n"},
		{"br", Br().String(), "<br/>\n"},
		{"anchor", A("home", "/").String(), "<a href=\"/\">home</a>\n"},
		{"time", Time("today", "2026-08-26").String(), "<time datetime=\"2026-08-26\">today</time>\n"},
		{"figcaption", FigCaption("fig").String(), "<figcaption>fig</figcaption>\n"},
		{"summary", Summary("more").String(), "<summary>more</summary>\n"},
		{"empty div self-closes", Div().String(), "<div/>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestImg(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"no dimensions", Img("a.png", "alt").String(), "<img alt=\"alt\" src=\"a.png\"/>\n"},
		{"width only", Img("a.png", "alt", 64).String(), "<img alt=\"alt\" src=\"a.png\" width=\"64\"/>\n"},
		{"width and height", Img("a.png", "alt", 64, 32).String(), "<img alt=\"alt\" height=\"32\" src=\"a.png\" width=\"64\"/>\n"},
		{"zero dimensions skipped", Img("a.png", "alt", 0, 0).String(), "<img alt=\"alt\" src=\"a.png\"/>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	ul := List(false).Append(Li("a"), Li("b"))
	want := "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>\n"
	if got := ul.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if List(true).Tag != "ol" {
		t.Errorf("ordered list tag = %q, want ol", List(true).Tag)
	}
}

func TestDetails(t *testing.T) {
	if got := Details().String(); got != "<details/>\n" {
		t.Errorf("got %q", got)
	}
	if got := Details(true).String(); got != "<details open/>\n" {
		t.Errorf("got %q", got)
	}
}

func TestSemanticContainers(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"header", Header().Tag},
		{"footer", Footer().Tag},
		{"main", Main().Tag},
		{"nav", Nav().Tag},
		{"section", Section().Tag},
		{"article", Article().Tag},
		{"aside", Aside().Tag},
		{"figure", Figure().Tag},
	}
	for _, tt := range tests {
		if tt.tag != tt.name {
			t.Errorf("tag = %q, want %q", tt.tag, tt.name)
		}
	}
}
