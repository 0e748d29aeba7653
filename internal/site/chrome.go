package site

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
	"github.com/ziadkadry99/scholarsite/internal/icon"
)

// codeStyle is the chroma style for fenced code in author markdown.
const codeStyle = "github"

// sanitizer cleans author-supplied markup before it is inlined. Code
// blocks keep their highlighting classes.
var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("pre", "code", "span")
	return p
}()

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle(codeStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// codeCSS returns the rules for the highlighting classes, or "" if the
// style cannot be written.
func codeCSS() string {
	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, styles.Get(codeStyle)); err != nil {
		return ""
	}
	return buf.String()
}

// QuickLinkKind picks a hero tile's icon: the explicit icon or kind
// field, else a guess from the label and href.
func QuickLinkKind(q QuickLink) icon.Kind {
	if k := strings.TrimSpace(q.Icon); k != "" {
		return icon.Parse(k)
	}
	if k := strings.TrimSpace(q.Kind); k != "" {
		return icon.Parse(k)
	}
	return icon.Infer(q.Label, q.Href)
}

// RenderQuickLink draws a hero tile. In-page links stay in the tab.
func RenderQuickLink(q QuickLink) *html.Node {
	target := "_blank"
	if strings.HasPrefix(q.Href, "#") {
		target = "_self"
	}
	return dom.El("a", dom.Attrs{
		"class":  "icon-tile",
		"href":   q.Href,
		"target": target,
		"rel":    "noreferrer",
	},
		icon.Node(QuickLinkKind(q)),
		dom.El("div", dom.Attrs{"class": "label"}, dom.Text(q.Label)),
	)
}

func applyHero(root *html.Node, cfg *Config) {
	hero := dom.ByID(root, "hero-links")
	if hero == nil || len(cfg.QuickLinks) == 0 {
		return
	}
	dom.AddClass(hero, "icon-grid")
	tiles := make([]*html.Node, 0, len(cfg.QuickLinks))
	for _, q := range cfg.QuickLinks {
		tiles = append(tiles, RenderQuickLink(q))
	}
	dom.Replace(hero, tiles...)
}

// SanitizeHTML returns author markup with scripts, handlers and unsafe
// URLs removed.
func SanitizeHTML(s string) string {
	return sanitizer.Sanitize(s)
}

// RenderMarkdown converts markdown to sanitized HTML nodes.
func RenderMarkdown(src string) ([]*html.Node, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return nil, err
	}
	return dom.Raw(SanitizeHTML(buf.String()))
}

func applyContact(root *html.Node, cfg *Config) error {
	if link := dom.ByID(root, "email-link"); link != nil && cfg.Email != "" {
		dom.SetAttr(link, "href", "mailto:"+cfg.Email)
		dom.Replace(link, dom.Text(cfg.Email))
	}

	if addr := dom.ByID(root, "address"); addr != nil && cfg.AddressHTML != "" {
		nodes, err := dom.Raw(SanitizeHTML(cfg.AddressHTML))
		if err != nil {
			return err
		}
		dom.Replace(addr, nodes...)
	}

	if list := dom.ByID(root, "elsewhere-list"); list != nil && len(cfg.Elsewhere) > 0 {
		entries := make([]*html.Node, 0, len(cfg.Elsewhere))
		for _, e := range cfg.Elsewhere {
			entries = append(entries, dom.El("li", nil,
				dom.El("a", dom.Attrs{"href": e.Href, "target": "_blank", "rel": "noreferrer"}, dom.Text(e.Label))))
		}
		dom.Replace(list, entries...)
	}

	if about := dom.ByID(root, "about"); about != nil && strings.TrimSpace(cfg.About) != "" {
		nodes, err := RenderMarkdown(cfg.About)
		if err != nil {
			return err
		}
		dom.Replace(about, nodes...)
	}
	return nil
}

func applyFooterYear(root *html.Node, now time.Time) {
	if year := dom.ByID(root, "year"); year != nil {
		dom.Replace(year, dom.Text(strconv.Itoa(now.Year())))
	}
}

// RenderBanner is the page-level message shown when site data failed to
// load.
func RenderBanner(err error) *html.Node {
	return dom.El("div", dom.Attrs{"class": "container load-error", "style": "padding:1rem 0;"},
		dom.El("div", dom.Attrs{"class": "card"},
			dom.El("strong", nil, dom.Text("Site data failed to load.")),
			dom.El("br", nil),
			dom.El("span", dom.Attrs{"class": "muted"}, dom.Text(err.Error())),
			dom.El("br", nil),
			dom.El("br", nil),
			dom.Text("This usually means the data files were opened directly from disk or are missing from the site source. "),
			dom.Text("Serve the directory over HTTP (for example with `scholarsite serve`) for a local preview."),
		),
	)
}

func applyBanner(root *html.Node, err error) {
	mainEl := dom.ByID(root, "main")
	if mainEl == nil {
		return
	}
	dom.Prepend(mainEl, RenderBanner(err))
}
