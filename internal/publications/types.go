package publications

import "github.com/ziadkadry99/scholarsite/internal/icon"

// AllTag is the synthetic tag that means "no tag filter".
const AllTag = "All"

// ResourcePath is where the publications document lives, relative to the
// site source.
const ResourcePath = "data/publications.json"

// Publication is one entry of data/publications.json.
type Publication struct {
	ID         string   `json:"id,omitempty"`
	Title      string   `json:"title"`
	Authors    string   `json:"authors"`
	Venue      string   `json:"venue"`
	Year       int      `json:"year"`
	Tags       []string `json:"tags"`
	Order      *int     `json:"order,omitempty"`
	PDF        string   `json:"pdf,omitempty"`
	DOI        string   `json:"doi,omitempty"`
	OSF        string   `json:"osf,omitempty"`
	Commentary string   `json:"commentary,omitempty"`
}

// Document is the top-level shape of data/publications.json.
type Document struct {
	Items []Publication `json:"items"`
}

// Link is one button in a publication's links row.
type Link struct {
	Label string    `json:"label"`
	Href  string    `json:"href"`
	Kind  icon.Kind `json:"kind"`
}

// Row is the view model of one rendered publication.
type Row struct {
	Anchor     string   `json:"anchor,omitempty"`
	YearChip   string   `json:"year"`
	TagChips   []string `json:"tag_chips"`
	Tags       []string `json:"tags"`
	Title      string   `json:"title"`
	Citation   string   `json:"citation"`
	Links      []Link   `json:"links"`
	SearchText string   `json:"-"`
}

// View is everything needed to draw the publications section for one
// filter state.
type View struct {
	Tags  []string    `json:"tags"`
	State FilterState `json:"state"`
	Rows  []Row       `json:"items"`
}
