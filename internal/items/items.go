// Package items renders the demos, teaching and outreach lists.
package items

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
	"github.com/ziadkadry99/scholarsite/internal/icon"
	"github.com/ziadkadry99/scholarsite/internal/publications"
)

// Link is a labelled button on an item.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Kind  string `json:"kind,omitempty"`
}

// Item is one entry of a demos, teaching or outreach document.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	When        string `json:"when,omitempty"`
	Links       []Link `json:"links,omitempty"`
}

// Document is the top-level shape of the list documents.
type Document struct {
	Items []Item `json:"items"`
}

// Layout selects the item template.
type Layout int

const (
	// LayoutItem is kicker, title, description and links.
	LayoutItem Layout = iota
	// LayoutTile is a grid tile with a heading.
	LayoutTile
)

// Section binds a list document to its anchor and layout.
type Section struct {
	Name     string
	Resource string
	AnchorID string
	Layout   Layout
}

// Sections are the generic lists a page carries, in render order.
var Sections = []Section{
	{Name: "demos", Resource: "data/demos.json", AnchorID: "demos-grid", Layout: LayoutTile},
	{Name: "teaching", Resource: "data/teaching.json", AnchorID: "teaching-list", Layout: LayoutItem},
	{Name: "outreach", Resource: "data/outreach.json", AnchorID: "outreach-list", Layout: LayoutItem},
}

func linkRow(class string, links []Link) *html.Node {
	row := dom.El("div", dom.Attrs{"class": class})
	for _, l := range links {
		row.AppendChild(publications.LinkButton(l.Label, l.Href, icon.Parse(l.Kind)))
	}
	return row
}

// RenderItem draws one entry.
func RenderItem(it Item, layout Layout) *html.Node {
	if layout == LayoutTile {
		title := it.Title
		if title == "" {
			title = "Demo"
		}
		return dom.El("div", dom.Attrs{"class": "tile"},
			dom.El("h3", nil, dom.Text(title)),
			dom.El("p", nil, dom.Text(it.Description)),
			linkRow("links", it.Links),
		)
	}
	return dom.El("div", dom.Attrs{"class": "item"},
		dom.El("div", dom.Attrs{"class": "kicker"}, dom.Text(it.When)),
		dom.El("div", dom.Attrs{"class": "item-title"}, dom.Text(it.Title)),
		dom.El("div", dom.Attrs{"class": "muted"}, dom.Text(it.Description)),
		linkRow("item-links", it.Links),
	)
}

// Render draws items in source order.
func Render(list []Item, layout Layout) []*html.Node {
	nodes := make([]*html.Node, 0, len(list))
	for _, it := range list {
		nodes = append(nodes, RenderItem(it, layout))
	}
	return nodes
}

// Apply fills the section's anchor. A missing anchor is skipped.
func Apply(root *html.Node, s Section, list []Item) {
	anchor := dom.ByID(root, s.AnchorID)
	if anchor == nil {
		return
	}
	dom.Replace(anchor, Render(list, s.Layout)...)
}
