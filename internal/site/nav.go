package site

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
)

// ActiveOffset is how far below the scroll position a section's top may
// sit and still count as the current section.
const ActiveOffset = 120

// Section is a page section and the distance of its top from the top of
// the document.
type Section struct {
	ID  string
	Top int
}

// Tabs returns the configured tabs or DefaultTabs.
func Tabs(cfg *Config) []Tab {
	if cfg == nil || len(cfg.Tabs) == 0 {
		return DefaultTabs
	}
	return cfg.Tabs
}

// ActiveSection returns the id of the last section whose top is at or
// above scrollY+ActiveOffset. With no section passing, it is the first
// section, or "home" when there are none.
func ActiveSection(sections []Section, scrollY int) string {
	current := "home"
	if len(sections) > 0 {
		current = sections[0].ID
	}
	top := scrollY + ActiveOffset
	for _, s := range sections {
		if s.Top <= top {
			current = s.ID
		}
	}
	return current
}

// RenderNav draws the navigation entries, marking current.
func RenderNav(tabs []Tab, current string) []*html.Node {
	nodes := make([]*html.Node, 0, len(tabs))
	for _, t := range tabs {
		a := dom.El("a", dom.Attrs{"href": "#" + t.ID}, dom.Text(t.Label))
		nodes = append(nodes, dom.El("li", nil, a))
	}
	MarkCurrent(nodes, current)
	return nodes
}

// MarkCurrent sets aria-current on every navigation link under nodes:
// "page" for the link to current, "false" for the rest.
func MarkCurrent(nodes []*html.Node, current string) {
	for _, n := range nodes {
		for _, a := range dom.FindAll(n, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "a"
		}) {
			val := "false"
			if dom.Attr(a, "href") == "#"+current {
				val = "page"
			}
			dom.SetAttr(a, "aria-current", val)
		}
	}
}

// SectionIDs lists the ids of the main sections of a document in order.
func SectionIDs(root *html.Node) []string {
	mainEl := dom.Find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "main"
	})
	if mainEl == nil {
		return nil
	}
	var ids []string
	for _, n := range dom.FindAll(mainEl, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "section" && dom.Attr(n, "id") != ""
	}) {
		ids = append(ids, dom.Attr(n, "id"))
	}
	return ids
}

// applyNav fills #nav-list. Before layout every section sits below the
// fold, so the first one is current.
func applyNav(root *html.Node, cfg *Config) {
	list := dom.ByID(root, "nav-list")
	if list == nil {
		return
	}
	var sections []Section
	for _, id := range SectionIDs(root) {
		sections = append(sections, Section{ID: id, Top: ActiveOffset + 1})
	}
	dom.Replace(list, RenderNav(Tabs(cfg), ActiveSection(sections, 0))...)
}
