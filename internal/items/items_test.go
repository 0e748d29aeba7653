package items

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/scholarsite/internal/dom"
)

func TestRenderItemLayout(t *testing.T) {
	it := Item{
		Title:       "Intro to Cognitive Psychology",
		Description: "Undergraduate lecture course",
		When:        "Fall 2024",
		Links: []Link{
			{Label: "Syllabus", Href: "files/syllabus.pdf", Kind: "pdf"},
			{Label: "Site", Href: "https://example.org"},
		},
	}
	out, err := dom.Render(RenderItem(it, LayoutItem))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		`<div class="kicker">Fall 2024</div>`,
		`<div class="item-title">Intro to Cognitive Psychology</div>`,
		`<div class="muted">Undergraduate lecture course</div>`,
		`class="item-links"`,
		`d="M14 2v6h6"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("item missing %q\n%s", want, out)
		}
	}

	if strings.Index(out, "Syllabus") > strings.Index(out, ">Site<") {
		t.Error("links should keep source order")
	}
}

func TestRenderTileDefaultsTitle(t *testing.T) {
	out, err := dom.Render(RenderItem(Item{Description: "An interactive demo"}, LayoutTile))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `<div class="tile"><h3>Demo</h3><p>An interactive demo</p><div class="links"></div></div>`) {
		t.Errorf("unexpected tile: %s", out)
	}
}

func TestApplyKeepsSourceOrder(t *testing.T) {
	doc, err := dom.Parse([]byte(`<html><body><div id="teaching-list">placeholder</div></body></html>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	Apply(doc, Sections[1], []Item{{Title: "Zeta"}, {Title: "Alpha"}})

	anchor := dom.ByID(doc, "teaching-list")
	got := dom.TextContent(anchor)
	if strings.Contains(got, "placeholder") {
		t.Error("anchor content should be replaced")
	}
	if strings.Index(got, "Zeta") > strings.Index(got, "Alpha") {
		t.Errorf("items were reordered: %q", got)
	}
}

func TestApplyMissingAnchorIsNoop(t *testing.T) {
	doc, err := dom.Parse([]byte(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	Apply(doc, Sections[0], []Item{{Title: "x"}})
	if dom.ByClass(doc, "tile") != nil {
		t.Error("nothing should render without the anchor")
	}
}
