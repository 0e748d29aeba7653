// Package presentations renders talk cards with an optional PDF or video
// embed.
package presentations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
)

// ResourcePath is where the presentations document lives.
const ResourcePath = "data/presentations.json"

// Presentation is one entry of data/presentations.json.
type Presentation struct {
	Title       string   `json:"title"`
	Authors     string   `json:"authors"`
	Venue       string   `json:"venue,omitempty"`
	Year        int      `json:"year,omitempty"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PDF         string   `json:"pdf,omitempty"`
	YouTubeID   string   `json:"youtubeId,omitempty"`
}

// Embed is the kind of media shown on a card.
type Embed int

const (
	EmbedNone Embed = iota
	EmbedPDF
	EmbedVideo
)

func (e Embed) String() string {
	switch e {
	case EmbedPDF:
		return "pdf"
	case EmbedVideo:
		return "video"
	default:
		return "none"
	}
}

// SelectEmbed picks the card's embed. A PDF wins over a video.
func SelectEmbed(p Presentation) Embed {
	if strings.TrimSpace(p.PDF) != "" {
		return EmbedPDF
	}
	if strings.TrimSpace(p.YouTubeID) != "" {
		return EmbedVideo
	}
	return EmbedNone
}

// Decode parses the presentations document. Anything other than a JSON
// array yields an empty list.
func Decode(raw []byte) ([]Presentation, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON")
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}
	var items []Presentation
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Sort returns a copy ordered by year, newest first. Ties keep source order.
func Sort(items []Presentation) []Presentation {
	out := make([]Presentation, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}

func card(children ...*html.Node) *html.Node {
	return dom.El("div", dom.Attrs{"class": "card"},
		dom.El("div", dom.Attrs{"class": "pad"}, children...))
}

// RenderEmpty is shown when the document holds no presentations.
func RenderEmpty() *html.Node {
	return card(
		dom.Text("No presentations yet. Add entries in "),
		dom.El("code", nil, dom.Text(ResourcePath)),
		dom.Text("."),
	)
}

// RenderUnavailable is shown when the document could not be loaded.
func RenderUnavailable() *html.Node {
	return card(
		dom.Text("Could not load "),
		dom.El("code", nil, dom.Text(ResourcePath)),
		dom.Text(". Check the file exists and is valid JSON."),
	)
}

// Render draws every presentation, newest first.
func Render(items []Presentation) []*html.Node {
	if len(items) == 0 {
		return []*html.Node{RenderEmpty()}
	}
	sorted := Sort(items)
	nodes := make([]*html.Node, 0, len(sorted))
	for _, p := range sorted {
		nodes = append(nodes, RenderCard(p))
	}
	return nodes
}

func pill(text string) *html.Node {
	return dom.El("span", dom.Attrs{"class": "pill"}, dom.Text(text))
}

func button(label, href string) *html.Node {
	return dom.El("a", dom.Attrs{
		"class":  "button",
		"href":   href,
		"target": "_blank",
		"rel":    "noopener",
	}, dom.Text(label))
}

func frame(src, title string, extra dom.Attrs) *html.Node {
	attrs := dom.Attrs{"src": src, "title": title, "loading": "lazy"}
	for k, v := range extra {
		attrs[k] = v
	}
	return dom.El("div", dom.Attrs{"class": "embed-frame"},
		dom.El("div", dom.Attrs{"class": "ratio-16x9"},
			dom.El("iframe", attrs)))
}

// RenderCard draws a single presentation.
func RenderCard(p Presentation) *html.Node {
	year := ""
	if p.Year != 0 {
		year = strconv.Itoa(p.Year)
	}

	meta := dom.El("div", dom.Attrs{"class": "meta"})
	for _, v := range []string{p.Type, p.Venue, year} {
		if v != "" {
			meta.AppendChild(pill(v))
		}
	}

	header := dom.El("div", dom.Attrs{"class": "presentation-head"},
		dom.El("div", nil,
			dom.El("div", dom.Attrs{"class": "section-title"}, dom.Text(p.Title)),
			dom.El("div", dom.Attrs{"class": "muted small"}, dom.Text(p.Authors)),
		),
		meta,
	)

	body := []*html.Node{header}
	if p.Description != "" {
		body = append(body, dom.El("p", dom.Attrs{"class": "presentation-desc"}, dom.Text(p.Description)))
	}
	if len(p.Tags) > 0 {
		row := dom.El("div", dom.Attrs{"class": "pill-row"})
		for _, t := range p.Tags {
			row.AppendChild(pill(t))
		}
		body = append(body, row)
	}

	switch SelectEmbed(p) {
	case EmbedPDF:
		pdf := strings.TrimSpace(p.PDF)
		body = append(body,
			frame(pdf+"#view=FitH", p.Title+" PDF preview", nil),
			dom.El("div", dom.Attrs{"class": "pub-links"}, button("Open PDF", pdf)),
		)
	case EmbedVideo:
		id := url.PathEscape(strings.TrimSpace(p.YouTubeID))
		body = append(body,
			frame("https://www.youtube-nocookie.com/embed/"+id, p.Title+" video", dom.Attrs{
				"allow":           "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share",
				"allowfullscreen": "",
			}),
			dom.El("div", dom.Attrs{"class": "pub-links"}, button("Open on YouTube", "https://youtu.be/"+id)),
		)
	}

	return dom.El("div", dom.Attrs{"class": "card presentation-card"},
		dom.El("div", dom.Attrs{"class": "pad"}, body...))
}

// Apply fills #presentations-list. A non-nil loadErr renders the
// unavailable message instead; this branch never fails the page.
func Apply(root *html.Node, items []Presentation, loadErr error) {
	list := dom.ByID(root, "presentations-list")
	if list == nil {
		return
	}
	if loadErr != nil {
		dom.Replace(list, RenderUnavailable())
		return
	}
	dom.Replace(list, Render(items)...)
}
