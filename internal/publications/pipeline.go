// Package publications sorts, filters and renders the publication list.
package publications

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/scholarsite/internal/icon"
)

// maxTagChips is how many tag chips a row shows next to the year chip.
const maxTagChips = 3

// FilterState selects the visible subset of publications. It is a value:
// every interaction produces a new state.
type FilterState struct {
	ActiveTag string `json:"active_tag"`
	Query     string `json:"query"`
}

// DefaultState shows every publication.
func DefaultState() FilterState {
	return FilterState{ActiveTag: AllTag}
}

// NewFilterState builds a state from raw user input. An empty tag means
// AllTag. The query keeps its case so it can be echoed back; only its
// whitespace is collapsed.
func NewFilterState(tag, query string) FilterState {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = AllTag
	}
	return FilterState{ActiveTag: tag, Query: collapseSpace(query)}
}

// WithTag returns a copy of s with a different active tag.
func (s FilterState) WithTag(tag string) FilterState {
	return NewFilterState(tag, s.Query)
}

// WithQuery returns a copy of s with a different query.
func (s FilterState) WithQuery(query string) FilterState {
	return NewFilterState(s.ActiveTag, query)
}

// NormalizeText lowercases s, collapses whitespace runs to one space and
// trims the ends. It matches the page script's normalize, so rows stamped
// with SearchText filter the same way in the browser and on the server.
func NormalizeText(s string) string {
	return collapseSpace(cases.Lower(language.Und).String(s))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func orderKey(p Publication) int {
	if p.Order == nil {
		return math.MaxInt
	}
	return *p.Order
}

// Normalize returns a copy sorted newest year first, then by ascending
// order. Entries without an order come after every ordered entry of the
// same year; entries without a year sort as year 0.
func Normalize(pubs []Publication) []Publication {
	out := slices.Clone(pubs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return orderKey(out[i]) < orderKey(out[j])
	})
	return out
}

// DeriveTags returns AllTag followed by every distinct tag, sorted.
func DeriveTags(pubs []Publication) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range pubs {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return append([]string{AllTag}, tags...)
}

// SearchText is the normalized text a query is matched against.
func SearchText(p Publication) string {
	parts := make([]string, 0, 4+len(p.Tags))
	if p.Year != 0 {
		parts = append(parts, strconv.Itoa(p.Year))
	}
	parts = append(parts, p.Title, p.Authors, p.Venue)
	parts = append(parts, p.Tags...)
	return NormalizeText(strings.Join(parts, " "))
}

// Matches reports whether p is visible under state.
func Matches(p Publication, state FilterState) bool {
	if state.ActiveTag != "" && state.ActiveTag != AllTag && !slices.Contains(p.Tags, state.ActiveTag) {
		return false
	}
	q := NormalizeText(state.Query)
	return q == "" || strings.Contains(SearchText(p), q)
}

// ApplyFilter keeps the publications visible under state, in input order.
func ApplyFilter(pubs []Publication, state FilterState) []Publication {
	out := make([]Publication, 0, len(pubs))
	for _, p := range pubs {
		if Matches(p, state) {
			out = append(out, p)
		}
	}
	return out
}

// Citation formats "authors (year). title venue" from the non-empty parts.
func Citation(p Publication) string {
	var pieces []string
	if p.Authors != "" {
		pieces = append(pieces, p.Authors)
	}
	if p.Year != 0 {
		pieces = append(pieces, "("+strconv.Itoa(p.Year)+").")
	}
	if p.Title != "" {
		pieces = append(pieces, p.Title)
	}
	if p.Venue != "" {
		pieces = append(pieces, p.Venue)
	}
	return strings.Join(pieces, " ")
}

// links builds the links row in its fixed order.
func links(p Publication) []Link {
	var out []Link
	if p.PDF != "" {
		out = append(out, Link{Label: "PDF", Href: p.PDF, Kind: icon.KindFile})
	}
	if p.Commentary != "" {
		out = append(out, Link{Label: "Commentary", Href: p.Commentary, Kind: icon.KindLink})
	}
	if p.DOI != "" {
		out = append(out, Link{Label: "DOI", Href: p.DOI, Kind: icon.KindLink})
	}
	if p.OSF != "" {
		out = append(out, Link{Label: "OSF", Href: p.OSF, Kind: icon.KindLink})
	}
	return out
}

// BuildRows converts publications to their view models.
func BuildRows(pubs []Publication) []Row {
	rows := make([]Row, 0, len(pubs))
	for _, p := range pubs {
		title := p.Title
		if title == "" {
			title = "Untitled"
		}
		year := ""
		if p.Year != 0 {
			year = strconv.Itoa(p.Year)
		}
		chips := p.Tags
		if len(chips) > maxTagChips {
			chips = chips[:maxTagChips]
		}
		rows = append(rows, Row{
			Anchor:     p.ID,
			YearChip:   year,
			TagChips:   slices.Clone(chips),
			Tags:       slices.Clone(p.Tags),
			Title:      title,
			Citation:   Citation(p),
			Links:      links(p),
			SearchText: SearchText(p),
		})
	}
	return rows
}

// Pipeline holds the normalized publications and their tag set.
type Pipeline struct {
	all  []Publication
	tags []string
}

// NewPipeline normalizes pubs and derives the tag set once.
func NewPipeline(pubs []Publication) *Pipeline {
	all := Normalize(pubs)
	return &Pipeline{all: all, tags: DeriveTags(all)}
}

// All returns the normalized publications.
func (p *Pipeline) All() []Publication { return p.all }

// Tags returns the derived tag set, AllTag first.
func (p *Pipeline) Tags() []string { return p.tags }

// View derives the visible rows for state.
func (p *Pipeline) View(state FilterState) View {
	return View{
		Tags:  p.tags,
		State: state,
		Rows:  BuildRows(ApplyFilter(p.all, state)),
	}
}
