package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/scholarsite/internal/dom"
	"github.com/ziadkadry99/scholarsite/internal/items"
	"github.com/ziadkadry99/scholarsite/internal/loader"
	"github.com/ziadkadry99/scholarsite/internal/presentations"
	"github.com/ziadkadry99/scholarsite/internal/publications"
)

// Source fetches site resources. *loader.Loader implements it.
type Source interface {
	Load(ctx context.Context, path string, v any) error
	LoadRaw(ctx context.Context, path string) ([]byte, error)
}

// Bundle is the result of loading every resource once. A nil field means
// the resource failed; its error is in Errs (or PresentationsErr, which
// never reaches the page banner).
type Bundle struct {
	Site             *Config
	Publications     *publications.Pipeline
	Presentations    []presentations.Presentation
	PresentationsErr error
	Lists            map[string][]items.Item
	Errs             []error
}

// Err joins the failures that should surface in the page banner.
func (b *Bundle) Err() error {
	return errors.Join(b.Errs...)
}

// Renderer loads the site resources and renders them into a page shell.
type Renderer struct {
	source  Source
	shell   []byte
	logger  *zap.Logger
	now     func() time.Time
	buildID string

	fragmentEndpoint string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithShell replaces the embedded page shell.
func WithShell(shell []byte) RendererOption {
	return func(r *Renderer) { r.shell = shell }
}

// WithRendererLogger sets the logger.
func WithRendererLogger(logger *zap.Logger) RendererOption {
	return func(r *Renderer) { r.logger = logger }
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

// WithBuildID appends ?v=<id> to the stylesheet and script references.
func WithBuildID(id string) RendererOption {
	return func(r *Renderer) { r.buildID = id }
}

// WithFragmentEndpoint tells the page script to fetch filtered
// publication rows from endpoint instead of filtering in the browser.
func WithFragmentEndpoint(endpoint string) RendererOption {
	return func(r *Renderer) { r.fragmentEndpoint = endpoint }
}

// NewRenderer creates a Renderer reading from source.
func NewRenderer(source Source, opts ...RendererOption) *Renderer {
	r := &Renderer{
		source: source,
		shell:  []byte(defaultShell),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load fetches every resource concurrently. Each load records its own
// failure, so one bad resource never hides another.
func (r *Renderer) Load(ctx context.Context) *Bundle {
	var (
		siteCfg                   Config
		pubsDoc                   publications.Document
		pres                      []presentations.Presentation
		siteErr, pubsErr, presErr error
		g                         errgroup.Group
	)
	lists := make([]items.Document, len(items.Sections))
	listErrs := make([]error, len(items.Sections))

	g.Go(func() error {
		siteErr = r.source.Load(ctx, ConfigPath, &siteCfg)
		return nil
	})
	g.Go(func() error {
		pubsErr = r.source.Load(ctx, publications.ResourcePath, &pubsDoc)
		return nil
	})
	g.Go(func() error {
		raw, err := r.source.LoadRaw(ctx, presentations.ResourcePath)
		if err != nil {
			presErr = err
			return nil
		}
		pres, err = presentations.Decode(raw)
		if err != nil {
			presErr = &loader.ParseError{Path: presentations.ResourcePath, Cause: err}
		}
		return nil
	})
	for i, s := range items.Sections {
		g.Go(func() error {
			listErrs[i] = r.source.Load(ctx, s.Resource, &lists[i])
			return nil
		})
	}
	_ = g.Wait()

	b := &Bundle{Lists: make(map[string][]items.Item)}
	if siteErr != nil {
		b.Errs = append(b.Errs, siteErr)
	} else {
		b.Site = &siteCfg
	}
	if pubsErr != nil {
		b.Errs = append(b.Errs, pubsErr)
	} else {
		b.Publications = publications.NewPipeline(pubsDoc.Items)
	}
	b.Presentations, b.PresentationsErr = pres, presErr
	if presErr != nil {
		r.logger.Warn("presentations unavailable", zap.Error(presErr))
	}
	for i, s := range items.Sections {
		if listErrs[i] != nil {
			b.Errs = append(b.Errs, listErrs[i])
			continue
		}
		b.Lists[s.Name] = lists[i].Items
	}
	return b
}

// Render fills a fresh copy of the shell from b. Anchors missing from the
// shell are skipped.
func (r *Renderer) Render(b *Bundle, state publications.FilterState) (*html.Node, error) {
	doc, err := dom.Parse(r.shell)
	if err != nil {
		return nil, fmt.Errorf("parsing page shell: %w", err)
	}

	applyFooterYear(doc, r.now())
	if r.buildID != "" {
		stampAssets(doc, r.buildID)
	}

	if b.Site != nil {
		applyNav(doc, b.Site)
		applyHero(doc, b.Site)
		if err := applyContact(doc, b.Site); err != nil {
			r.logger.Warn("contact details not rendered", zap.Error(err))
		}
	}

	if b.Publications != nil {
		publications.Apply(doc, b.Publications.View(state))
		if list := dom.ByID(doc, "publications-list"); list != nil && r.fragmentEndpoint != "" {
			dom.SetAttr(list, "data-endpoint", r.fragmentEndpoint)
		}
	}

	presentations.Apply(doc, b.Presentations, b.PresentationsErr)

	for _, s := range items.Sections {
		if list, ok := b.Lists[s.Name]; ok {
			items.Apply(doc, s, list)
		}
	}

	if err := b.Err(); err != nil {
		r.logger.Error("site data failed to load", zap.Error(err))
		applyBanner(doc, err)
	}
	return doc, nil
}

// RenderPage loads every resource and returns the serialized page.
func (r *Renderer) RenderPage(ctx context.Context, state publications.FilterState) ([]byte, *Bundle, error) {
	b := r.Load(ctx)
	doc, err := r.Render(b, state)
	if err != nil {
		return nil, b, err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, b, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), b, nil
}

// stampAssets versions the local stylesheet and script references.
func stampAssets(doc *html.Node, buildID string) {
	for _, n := range dom.FindAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && (n.Data == "link" || n.Data == "script")
	}) {
		key := "src"
		if n.Data == "link" {
			key = "href"
		}
		switch dom.Attr(n, key) {
		case StylePath, ScriptPath:
			dom.SetAttr(n, key, dom.Attr(n, key)+"?v="+buildID)
		}
	}
}
