package publications

import (
	"slices"
	"strings"
	"testing"
)

func intp(v int) *int { return &v }

func samplePubs() []Publication {
	return []Publication{
		{ID: "p1", Title: "Gaze and Memory", Authors: "Doe, J.", Venue: "Cognition", Year: 2019, Tags: []string{"memory", "vision"}},
		{ID: "p2", Title: "Second of 2021", Authors: "Roe, R.", Venue: "Psych Science", Year: 2021, Tags: []string{"attention"}, Order: intp(2)},
		{ID: "p3", Title: "Unordered 2021", Authors: "Poe, E.", Venue: "JEP", Year: 2021, Tags: []string{"memory"}},
		{ID: "p4", Title: "First of 2021", Authors: "Moe, M.", Venue: "Nature Human Behaviour", Year: 2021, Tags: []string{"vision"}, Order: intp(1)},
		{ID: "p5", Title: "Undated preprint", Authors: "Zoe, Z.", Venue: "PsyArXiv"},
		{ID: "p6", Title: "Large order 2021", Authors: "Koe, K.", Year: 2021, Order: intp(5000)},
	}
}

func ids(pubs []Publication) []string {
	out := make([]string, len(pubs))
	for i, p := range pubs {
		out[i] = p.ID
	}
	return out
}

func TestNormalizeOrdering(t *testing.T) {
	got := ids(Normalize(samplePubs()))
	want := []string{"p4", "p2", "p6", "p3", "p1", "p5"}
	if !slices.Equal(got, want) {
		t.Errorf("Normalize order = %v, want %v", got, want)
	}
}

func TestNormalizeIsSortedAndDoesNotMutateInput(t *testing.T) {
	in := samplePubs()
	before := ids(in)
	out := Normalize(in)

	if !slices.Equal(ids(in), before) {
		t.Error("Normalize must not reorder its input")
	}
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.Year < cur.Year {
			t.Fatalf("year not descending at %d: %d then %d", i, prev.Year, cur.Year)
		}
		if prev.Year == cur.Year && orderKey(prev) > orderKey(cur) {
			t.Fatalf("order not ascending within year %d at %d", cur.Year, i)
		}
	}
}

func TestNormalizeIsStableForTies(t *testing.T) {
	pubs := []Publication{
		{ID: "a", Year: 2020},
		{ID: "b", Year: 2020},
		{ID: "c", Year: 2020},
	}
	if got := ids(Normalize(pubs)); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("ties should keep source order, got %v", got)
	}
}

func TestDeriveTags(t *testing.T) {
	got := DeriveTags(samplePubs())
	want := []string{"All", "attention", "memory", "vision"}
	if !slices.Equal(got, want) {
		t.Errorf("DeriveTags = %v, want %v", got, want)
	}

	if got := DeriveTags(nil); !slices.Equal(got, []string{"All"}) {
		t.Errorf("DeriveTags(nil) = %v, want [All]", got)
	}
}

func TestApplyFilterIdentity(t *testing.T) {
	pubs := Normalize(samplePubs())
	got := ApplyFilter(pubs, FilterState{ActiveTag: AllTag, Query: ""})
	if !slices.Equal(ids(got), ids(pubs)) {
		t.Errorf("All/empty filter changed the list: %v", ids(got))
	}
	if got := ApplyFilter(pubs, DefaultState()); len(got) != len(pubs) {
		t.Errorf("DefaultState kept %d of %d", len(got), len(pubs))
	}
}

func TestApplyFilterByTag(t *testing.T) {
	pubs := samplePubs()
	covered := make(map[string]bool)

	for _, tag := range DeriveTags(pubs)[1:] {
		for _, p := range ApplyFilter(pubs, NewFilterState(tag, "")) {
			if !slices.Contains(p.Tags, tag) {
				t.Errorf("tag %q returned %s without that tag", tag, p.ID)
			}
			covered[p.ID] = true
		}
	}

	for _, p := range pubs {
		if len(p.Tags) > 0 && !covered[p.ID] {
			t.Errorf("%s has tags but no tag filter returned it", p.ID)
		}
	}
}

func TestApplyFilterQuery(t *testing.T) {
	pubs := samplePubs()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title fragment, mixed case", "GAZE and", []string{"p1"}},
		{"extra whitespace", "  gaze    and\tmemory ", []string{"p1"}},
		{"author", "roe, r.", []string{"p2"}},
		{"venue", "nature human", []string{"p4"}},
		{"year", "2019", []string{"p1"}},
		{"tag", "attention", []string{"p2"}},
		{"spans fields", "2021 second", []string{"p2"}},
		{"absent", "nomatch", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ApplyFilter(pubs, NewFilterState("", tt.query)))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("query %q = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestApplyFilterTagAndQuery(t *testing.T) {
	got := ids(ApplyFilter(samplePubs(), NewFilterState("memory", "gaze")))
	if !slices.Equal(got, []string{"p1"}) {
		t.Errorf("memory+gaze = %v, want [p1]", got)
	}
	if got := ApplyFilter(samplePubs(), NewFilterState("attention", "gaze")); len(got) != 0 {
		t.Errorf("attention+gaze should be empty, got %v", ids(got))
	}
}

func TestNewFilterState(t *testing.T) {
	s := NewFilterState("", "  Working\n MEMORY ")
	if s.ActiveTag != AllTag {
		t.Errorf("ActiveTag = %q, want All", s.ActiveTag)
	}
	if s.Query != "Working MEMORY" {
		t.Errorf("Query = %q, want %q", s.Query, "Working MEMORY")
	}

	next := s.WithTag("vision")
	if next.ActiveTag != "vision" || next.Query != "Working MEMORY" {
		t.Errorf("WithTag = %+v", next)
	}
	if s.ActiveTag != AllTag {
		t.Error("WithTag must not modify the receiver")
	}
	if got := next.WithQuery(" Weiß ").Query; got != "Weiß" {
		t.Errorf("WithQuery = %q, want Weiß", got)
	}
}

func TestSearchTextMatchesLowercasedFields(t *testing.T) {
	p := Publication{Title: "Straße", Authors: "Weiß, K.", Venue: "Œuvres", Year: 2020}
	text := BuildRows([]Publication{p})[0].SearchText
	for _, field := range []string{p.Title, p.Authors, p.Venue} {
		if want := strings.ToLower(field); !strings.Contains(text, want) {
			t.Errorf("SearchText = %q, missing %q", text, want)
		}
	}

	for _, q := range []string{"weiß", "WEIß", "straße", "œuvres"} {
		if !Matches(p, NewFilterState("", q)) {
			t.Errorf("query %q should match %+v", q, p)
		}
	}
}

func TestSearchTextSkipsMissingFields(t *testing.T) {
	got := SearchText(Publication{Title: "Only Title"})
	if got != "only title" {
		t.Errorf("SearchText = %q, want %q", got, "only title")
	}
}

func TestCitation(t *testing.T) {
	tests := []struct {
		pub  Publication
		want string
	}{
		{Publication{Authors: "Doe, J.", Year: 2020, Title: "A study", Venue: "Cognition"}, "Doe, J. (2020). A study Cognition"},
		{Publication{Title: "Untimed"}, "Untimed"},
		{Publication{Authors: "Doe, J.", Year: 2020}, "Doe, J. (2020)."},
		{Publication{}, ""},
	}
	for _, tt := range tests {
		if got := Citation(tt.pub); got != tt.want {
			t.Errorf("Citation(%+v) = %q, want %q", tt.pub, got, tt.want)
		}
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows([]Publication{{
		Title:      "",
		Year:       2022,
		Tags:       []string{"a", "b", "c", "d"},
		PDF:        "paper.pdf",
		OSF:        "https://osf.io/x",
		DOI:        "https://doi.org/10/x",
		Commentary: "https://example.org/c",
	}})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", r.Title)
	}
	if r.YearChip != "2022" {
		t.Errorf("YearChip = %q", r.YearChip)
	}
	if !slices.Equal(r.TagChips, []string{"a", "b", "c"}) {
		t.Errorf("TagChips = %v, want first three", r.TagChips)
	}
	var labels []string
	for _, l := range r.Links {
		labels = append(labels, l.Label)
	}
	if !slices.Equal(labels, []string{"PDF", "Commentary", "DOI", "OSF"}) {
		t.Errorf("link order = %v", labels)
	}
}

func TestPipelineView(t *testing.T) {
	p := NewPipeline([]Publication{
		{Title: "A", Year: 2020, Tags: []string{"x"}},
		{Title: "B", Year: 2021, Tags: []string{"y"}},
	})

	all := p.View(DefaultState())
	if len(all.Rows) != 2 || all.Rows[0].Title != "B" {
		t.Fatalf("default view = %+v, want B first", all.Rows)
	}
	if !slices.Equal(all.Tags, []string{"All", "x", "y"}) {
		t.Errorf("tags = %v", all.Tags)
	}

	x := p.View(DefaultState().WithTag("x"))
	if len(x.Rows) != 1 || x.Rows[0].Title != "A" {
		t.Errorf("tag x view = %+v, want only A", x.Rows)
	}

	none := p.View(DefaultState().WithQuery("nomatch"))
	if len(none.Rows) != 0 {
		t.Errorf("nomatch view = %+v, want empty", none.Rows)
	}
}
