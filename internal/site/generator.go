package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/scholarsite/internal/items"
	"github.com/ziadkadry99/scholarsite/internal/presentations"
	"github.com/ziadkadry99/scholarsite/internal/progress"
	"github.com/ziadkadry99/scholarsite/internal/publications"
)

// ErrNoOutput is returned when Generate has nowhere to write.
var ErrNoOutput = errors.New("no output directory configured")

// Generator renders the site into a directory that any static host can
// serve: the filled page, its stylesheet and script, the data documents
// and the author's own files.
type Generator struct {
	Source    Source
	Shell     []byte
	SiteDir   string
	Assets    []string
	OutputDir string
	BuildID   string
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// Result describes a finished render.
type Result struct {
	BuildID string
	Files   []string
	// LoadErr holds the resource failures shown in the page banner.
	LoadErr error
}

// Resources lists every data document the page reads.
func Resources() []string {
	paths := []string{ConfigPath, publications.ResourcePath, presentations.ResourcePath}
	for _, s := range items.Sections {
		paths = append(paths, s.Resource)
	}
	return paths
}

// Generate writes the site. Resource failures do not fail the render;
// they end up in the page banner and in Result.LoadErr.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.OutputDir == "" {
		return nil, ErrNoOutput
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	buildID := g.BuildID
	if buildID == "" {
		buildID = strings.SplitN(uuid.NewString(), "-", 2)[0]
	}

	assets, err := g.matchAssets()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	resources := Resources()
	res := &Result{BuildID: buildID}
	step := 0
	reporter.Start(3 + len(resources) + len(assets))
	defer reporter.Finish()

	opts := []RendererOption{WithBuildID(buildID), WithRendererLogger(logger)}
	if len(g.Shell) > 0 {
		opts = append(opts, WithShell(g.Shell))
	}
	page, bundle, err := NewRenderer(g.Source, opts...).RenderPage(ctx, publications.DefaultState())
	if err != nil {
		return nil, err
	}
	res.LoadErr = bundle.Err()

	writes := []struct {
		name string
		data []byte
	}{
		{"index.html", page},
		{StylePath, []byte(styleSheet)},
		{ScriptPath, []byte(jsContent)},
	}
	for _, w := range writes {
		step++
		reporter.Update(step, w.name)
		if err := g.write(w.name, w.data); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, w.name)
	}

	for _, p := range resources {
		step++
		reporter.Update(step, p)
		raw, err := g.Source.LoadRaw(ctx, p)
		if err != nil {
			logger.Debug("resource not copied", zap.String("path", p), zap.Error(err))
			continue
		}
		if err := g.write(p, raw); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, p)
	}

	for _, a := range assets {
		step++
		reporter.Update(step, a)
		data, err := os.ReadFile(filepath.Join(g.SiteDir, filepath.FromSlash(a)))
		if err != nil {
			return nil, fmt.Errorf("reading asset %s: %w", a, err)
		}
		if err := g.write(a, data); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, a)
	}

	logger.Info("site rendered",
		zap.String("output", g.OutputDir),
		zap.String("build", buildID),
		zap.Int("files", len(res.Files)))
	return res, nil
}

// matchAssets expands the asset globs against SiteDir. Directories, the
// output directory and the generated files are never copied.
func (g *Generator) matchAssets() ([]string, error) {
	if g.SiteDir == "" || len(g.Assets) == 0 {
		return nil, nil
	}
	fsys := os.DirFS(g.SiteDir)
	skip := outputPrefix(g.SiteDir, g.OutputDir)

	seen := make(map[string]bool)
	var out []string
	for _, pattern := range g.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || generated(m) || (skip != "" && (m == skip || strings.HasPrefix(m, skip+"/"))) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}

func generated(name string) bool {
	switch name {
	case "index.html", StylePath, ScriptPath:
		return true
	}
	return false
}

// outputPrefix returns the output directory relative to siteDir in slash
// form, or "" when it lies outside.
func outputPrefix(siteDir, outputDir string) string {
	absSite, err := filepath.Abs(siteDir)
	if err != nil {
		return ""
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(absSite, absOut)
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return ""
	}
	return rel
}

func (g *Generator) write(name string, data []byte) error {
	if !fs.ValidPath(name) {
		return fmt.Errorf("refusing to write %q", name)
	}
	dst := filepath.Join(g.OutputDir, filepath.FromSlash(path.Clean(name)))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
