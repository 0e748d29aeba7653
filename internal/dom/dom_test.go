package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestElRendersSortedAttributesAndChildren(t *testing.T) {
	n := El("a", Attrs{"href": "https://example.org", "class": "button"},
		El("span", nil, Text("icon")),
		nil,
		Text("PDF"),
	)

	got, err := Render(n)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<a class="button" href="https://example.org"><span>icon</span>PDF</a>`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestTextIsEscaped(t *testing.T) {
	n := El("div", Attrs{"title": `"quoted" <b>`}, Text("<script>alert(1)</script>"))
	got, err := Render(n)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("text was not escaped: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %s", got)
	}
	if strings.Contains(got, `"quoted"`) {
		t.Errorf("attribute quotes were not escaped: %s", got)
	}
}

func TestRawParsesSVG(t *testing.T) {
	nodes, err := Raw(`<svg viewBox="0 0 24 24"><path d="M4 4h16"/></svg>`)
	if err != nil {
		t.Fatalf("Raw: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Data != "svg" {
		t.Fatalf("Raw returned %d nodes, first=%v", len(nodes), nodes)
	}
	out, _ := RenderAll(nodes)
	if !strings.Contains(out, `<path d="M4 4h16"`) {
		t.Errorf("unexpected svg rendering: %s", out)
	}
}

func TestDocumentQueries(t *testing.T) {
	doc, err := Parse([]byte(`<!DOCTYPE html><html><body>
<nav><button class="nav-toggle x">menu</button><ul id="nav-list"><li>old</li></ul></nav>
<main id="main"><p>first</p></main></body></html>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	list := ByID(doc, "nav-list")
	if list == nil {
		t.Fatal("nav-list not found")
	}
	Replace(list, El("li", nil, Text("new")))
	if got := TextContent(list); got != "new" {
		t.Errorf("after Replace text = %q, want new", got)
	}

	if ByID(doc, "missing") != nil {
		t.Error("ByID should return nil for a missing id")
	}
	if ByClass(doc, "nav-toggle") == nil {
		t.Error("ByClass should find nav-toggle")
	}

	main := ByID(doc, "main")
	Prepend(main, El("div", Attrs{"class": "banner"}))
	if main.FirstChild.Type != html.ElementNode || Attr(main.FirstChild, "class") != "banner" {
		t.Error("Prepend should insert the banner first")
	}

	items := FindAll(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "li" })
	if len(items) != 1 {
		t.Errorf("FindAll li = %d, want 1", len(items))
	}
}

func TestAddClass(t *testing.T) {
	n := El("div", Attrs{"class": "card"})
	AddClass(n, "icon-grid")
	AddClass(n, "icon-grid")
	if got := Attr(n, "class"); got != "card icon-grid" {
		t.Errorf("class = %q, want %q", got, "card icon-grid")
	}

	bare := El("div", nil)
	AddClass(bare, "open")
	if got := Attr(bare, "class"); got != "open" {
		t.Errorf("class = %q, want open", got)
	}
}
