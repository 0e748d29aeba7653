package publications

import (
	"encoding/json"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
	"github.com/ziadkadry99/scholarsite/internal/icon"
)

// LinkButton renders an icon+label button that opens in a new tab.
func LinkButton(label, href string, kind icon.Kind) *html.Node {
	return dom.El("a", dom.Attrs{
		"class":  "button",
		"href":   href,
		"target": "_blank",
		"rel":    "noreferrer",
	}, icon.Node(kind), dom.Text(label))
}

// EmptyRow is the placeholder shown when nothing matches.
func EmptyRow() *html.Node {
	return dom.El("li", dom.Attrs{"class": "pub pub-empty"},
		dom.El("div", dom.Attrs{"class": "title"}, dom.Text("No matches.")),
		dom.El("div", dom.Attrs{"class": "citation"}, dom.Text("Try a different search term or filter.")),
	)
}

func chip(text string) *html.Node {
	return dom.El("span", dom.Attrs{"class": "chip", "style": "pointer-events:none;"}, dom.Text(text))
}

// RenderRow draws one publication row. data-tags and data-text let the
// page script re-filter without a round trip.
func RenderRow(r Row) *html.Node {
	tags, _ := json.Marshal(r.Tags)
	attrs := dom.Attrs{
		"class":     "pub",
		"data-tags": string(tags),
		"data-text": r.SearchText,
	}
	if r.Anchor != "" {
		attrs["id"] = r.Anchor
	}

	meta := dom.El("div", dom.Attrs{"class": "meta"}, chip(r.YearChip))
	for _, t := range r.TagChips {
		meta.AppendChild(chip(t))
	}

	linkRow := dom.El("div", dom.Attrs{"class": "links"})
	for _, l := range r.Links {
		linkRow.AppendChild(LinkButton(l.Label, l.Href, l.Kind))
	}

	return dom.El("li", attrs,
		meta,
		dom.El("div", dom.Attrs{"class": "title"}, dom.Text(r.Title)),
		dom.El("div", dom.Attrs{"class": "citation"}, dom.Text(r.Citation)),
		linkRow,
	)
}

// RenderList draws the visible rows, or the placeholder when there are none.
func RenderList(rows []Row) []*html.Node {
	if len(rows) == 0 {
		return []*html.Node{EmptyRow()}
	}
	nodes := make([]*html.Node, 0, len(rows))
	for _, r := range rows {
		nodes = append(nodes, RenderRow(r))
	}
	return nodes
}

// RenderFilters draws one chip button per tag, pressing the active one.
func RenderFilters(tags []string, state FilterState) []*html.Node {
	nodes := make([]*html.Node, 0, len(tags))
	for _, tag := range tags {
		pressed := "false"
		if tag == state.ActiveTag {
			pressed = "true"
		}
		nodes = append(nodes, dom.El("button", dom.Attrs{
			"class":        "chip",
			"type":         "button",
			"data-tag":     tag,
			"aria-pressed": pressed,
		}, dom.Text(tag)))
	}
	return nodes
}

// Apply fills the publication anchors of a page for view. Missing anchors
// are skipped.
func Apply(root *html.Node, view View) {
	if filters := dom.ByID(root, "publications-filters"); filters != nil {
		dom.Replace(filters, RenderFilters(view.Tags, view.State)...)
	}
	if list := dom.ByID(root, "publications-list"); list != nil {
		dom.Replace(list, RenderList(view.Rows)...)
	}
	if search := dom.ByID(root, "pub-search"); search != nil {
		dom.SetAttr(search, "value", view.State.Query)
	}
}
