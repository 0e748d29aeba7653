// Package icon maps symbolic icon kinds to inline SVG markup.
package icon

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
)

// Kind identifies an icon.
type Kind string

const (
	KindLink    Kind = "link"
	KindEmail   Kind = "email"
	KindFile    Kind = "file"
	KindGitHub  Kind = "github"
	KindORCID   Kind = "orcid"
	KindScholar Kind = "scholar"
	KindYouTube Kind = "youtube"
	KindOSF     Kind = "osf"
)

// aliases maps accepted spellings to their canonical kind.
var aliases = map[string]Kind{
	"link":           KindLink,
	"email":          KindEmail,
	"file":           KindFile,
	"pdf":            KindFile,
	"cv":             KindFile,
	"github":         KindGitHub,
	"orcid":          KindORCID,
	"scholar":        KindScholar,
	"googlescholar":  KindScholar,
	"google-scholar": KindScholar,
	"youtube":        KindYouTube,
	"video":          KindYouTube,
	"osf":            KindOSF,
}

// Parse resolves a kind name case-insensitively. Unknown or empty names
// resolve to KindLink.
func Parse(s string) Kind {
	if k, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return KindLink
}

// Infer guesses a kind from a link's label and href. Older site.json
// files carry quick links without an icon field; this keeps them
// rendering as before.
func Infer(label, href string) Kind {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "scholar"):
		return KindScholar
	case strings.Contains(l, "orcid"):
		return KindORCID
	case strings.Contains(l, "github"):
		return KindGitHub
	case strings.Contains(l, "osf"):
		return KindOSF
	case strings.Contains(l, "cv"):
		return KindFile
	case strings.HasPrefix(href, "mailto:"):
		return KindEmail
	case strings.Contains(href, "youtu"):
		return KindYouTube
	}
	return KindLink
}

const common = `viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.8" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" focusable="false"`

var paths = map[Kind]string{
	KindEmail:   `<path d="M4 4h16v16H4z"/><path d="m22 6-10 7L2 6"/>`,
	KindFile:    `<path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"/><path d="M14 2v6h6"/>`,
	KindGitHub:  `<path d="M9 19c-4 1.5-4-2.5-5-3"/><path d="M14 22v-3.5c0-1 .1-1.7-.5-2.4 1.8-.2 3.7-.9 3.7-4.1 0-.9-.3-1.7-.9-2.3.1-.2.4-1-.1-2.1 0 0-.7-.2-2.3.9-.7-.2-1.5-.3-2.2-.3s-1.5.1-2.2.3c-1.6-1.1-2.3-.9-2.3-.9-.5 1.1-.2 1.9-.1 2.1-.6.6-.9 1.4-.9 2.3 0 3.2 1.9 3.9 3.7 4.1-.4.5-.6 1.2-.5 1.9V22"/>`,
	KindORCID:   `<circle cx="12" cy="12" r="9"/><path d="M10 10v7"/><path d="M10 7h.01"/><path d="M13 10h2.2c2.2 0 3.8 1.6 3.8 3.5S17.4 17 15.2 17H13v-7Z"/>`,
	KindScholar: `<path d="M12 3 2 8l10 5 10-5-10-5Z"/><path d="M4 10v6c0 2 4 4 8 4s8-2 8-4v-6"/><path d="M8.5 13.5v3"/><path d="M15.5 13.5v3"/>`,
	KindYouTube: `<path d="M22 12s0-3-1-4-4-1-9-1-8 0-9 1-1 4-1 4 0 3 1 4 4 1 9 1 8 0 9-1 1-4 1-4Z"/><path d="m10 9 6 3-6 3V9Z"/>`,
	KindOSF:     `<path d="M7.5 7.5 12 3l4.5 4.5"/><path d="M7.5 16.5 12 21l4.5-4.5"/><path d="M3 12h18"/>`,
	KindLink:    `<path d="M10 13a5 5 0 0 1 0-7l1-1a5 5 0 1 1 7 7l-1 1"/><path d="M14 11a5 5 0 0 1 0 7l-1 1a5 5 0 0 1-7-7l1-1"/>`,
}

// SVG returns the markup for kind, falling back to the link icon.
func SVG(kind Kind) string {
	p, ok := paths[kind]
	if !ok {
		p = paths[KindLink]
	}
	return "<svg " + common + ">" + p + "</svg>"
}

// Node returns a fresh <span> holding the icon's SVG.
func Node(kind Kind) *html.Node {
	return dom.El("span", nil, dom.MustRaw(SVG(kind))...)
}
