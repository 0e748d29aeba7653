package presentations

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/scholarsite/internal/dom"
)

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	out, err := dom.Render(n)
	require.NoError(t, err)
	return out
}

func TestSelectEmbed(t *testing.T) {
	tests := []struct {
		name string
		p    Presentation
		want Embed
	}{
		{"pdf wins", Presentation{PDF: "x.pdf", YouTubeID: "abc"}, EmbedPDF},
		{"video only", Presentation{YouTubeID: "abc"}, EmbedVideo},
		{"neither", Presentation{}, EmbedNone},
		{"blank pdf falls through", Presentation{PDF: "   ", YouTubeID: "abc"}, EmbedVideo},
		{"blank both", Presentation{PDF: " ", YouTubeID: "\t"}, EmbedNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectEmbed(tt.p))
		})
	}
}

func TestRenderCardPDF(t *testing.T) {
	out := render(t, RenderCard(Presentation{Title: "Talk", PDF: " slides/talk.pdf ", YouTubeID: "abc"}))

	assert.Contains(t, out, `src="slides/talk.pdf#view=FitH"`)
	assert.Contains(t, out, `title="Talk PDF preview"`)
	assert.Contains(t, out, `>Open PDF</a>`)
	assert.Contains(t, out, `class="ratio-16x9"`)
	assert.NotContains(t, out, "youtube")
}

func TestRenderCardVideo(t *testing.T) {
	out := render(t, RenderCard(Presentation{Title: "Talk", YouTubeID: "abc123"}))

	assert.Contains(t, out, `src="https://www.youtube-nocookie.com/embed/abc123"`)
	assert.Contains(t, out, `href="https://youtu.be/abc123"`)
	assert.Contains(t, out, `>Open on YouTube</a>`)
	assert.Contains(t, out, `allowfullscreen=""`)
	assert.Contains(t, out, `rel="noopener"`)
}

func TestRenderCardWithoutMedia(t *testing.T) {
	out := render(t, RenderCard(Presentation{Title: "Talk", Authors: "Doe", Type: "Keynote", Year: 2024}))

	assert.NotContains(t, out, "<iframe")
	assert.NotContains(t, out, `class="button"`)
	assert.Contains(t, out, `<span class="pill">Keynote</span><span class="pill">2024</span>`)
}

func TestRenderCardEscapesText(t *testing.T) {
	p := Presentation{
		Title:       `<script>alert("x")</script>`,
		Authors:     "<b>Doe</b>",
		Description: "<img src=x onerror=alert(1)>",
		Tags:        []string{"<i>tag</i>"},
		PDF:         `x.pdf"><script>alert(2)</script>`,
	}
	out := render(t, RenderCard(p))

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<b>Doe")
	assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
}

func TestRenderSortsNewestFirst(t *testing.T) {
	nodes := Render([]Presentation{
		{Title: "Old", Year: 2018},
		{Title: "Undated"},
		{Title: "New", Year: 2023},
		{Title: "Also 2018", Year: 2018},
	})
	require.Len(t, nodes, 4)

	var titles []string
	for _, n := range nodes {
		titles = append(titles, dom.TextContent(dom.ByClass(n, "section-title")))
	}
	assert.Equal(t, []string{"New", "Old", "Also 2018", "Undated"}, titles)
}

func TestRenderEmptyAndUnavailable(t *testing.T) {
	nodes := Render(nil)
	require.Len(t, nodes, 1)
	assert.True(t, strings.HasPrefix(dom.TextContent(nodes[0]), "No presentations yet"))

	doc, err := dom.Parse([]byte(`<html><body><div id="presentations-list"></div></body></html>`))
	require.NoError(t, err)
	Apply(doc, nil, errors.New("boom"))
	assert.Contains(t, dom.TextContent(dom.ByID(doc, "presentations-list")), "Could not load data/presentations.json")
}

func TestDecode(t *testing.T) {
	items, err := Decode([]byte(` [{"title":"A","youtubeId":"x"}] `))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "x", items[0].YouTubeID)

	items, err = Decode([]byte(`{"items":[{"title":"A"}]}`))
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = Decode([]byte(`[{"title":`))
	assert.Error(t, err)
}
