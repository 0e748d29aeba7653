// Package loader fetches the site's JSON resources.
//
// A source is either an http(s) base URL or a local directory. Local
// directories are read through http.NewFileTransport so both kinds of
// source share the same request path, status handling and errors.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxBodySize caps a single resource body.
const maxBodySize = 8 << 20

// Loader resolves resource paths against a base and decodes them.
type Loader struct {
	base   *url.URL
	client *http.Client
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the HTTP client. The loader works on a copy, so
// later options never modify c. For local sources its transport is
// replaced by a file transport; the other settings are kept.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		cp := *c
		l.client = &cp
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) { l.client.Timeout = d }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader for source.
func New(source string, opts ...Option) (*Loader, error) {
	base, local, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		base:   base,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if local {
		transport := &http.Transport{}
		transport.RegisterProtocol("file", http.NewFileTransport(http.Dir(base.Path)))
		client := *l.client
		client.Transport = transport
		l.client = &client
		// The file transport roots paths at the directory itself.
		l.base = &url.URL{Scheme: "file", Path: "/"}
	}
	return l, nil
}

// parseSource turns a base URL or directory into a URL ending in "/".
func parseSource(source string) (*url.URL, bool, error) {
	if source == "" {
		source = "."
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, false, fmt.Errorf("parsing source URL %q: %w", source, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		return u, false, nil
	}

	dir := strings.TrimPrefix(source, "file://")
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, false, fmt.Errorf("resolving source directory %q: %w", source, err)
	}
	return &url.URL{Scheme: "file", Path: abs}, true, nil
}

// Source returns the base the loader resolves paths against.
func (l *Loader) Source() string {
	return l.base.String()
}

// LoadRaw fetches path and returns its body.
func (l *Loader) LoadRaw(ctx context.Context, path string) ([]byte, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	target := l.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Warn("resource request failed", zap.String("path", path), zap.Error(err))
		return nil, &LoadError{Path: path, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		l.logger.Warn("resource returned non-success status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, &LoadError{Path: path, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &LoadError{Path: path, Status: resp.StatusCode, Cause: err}
	}
	if len(body) > maxBodySize {
		l.logger.Warn("resource exceeds size limit", zap.String("path", path), zap.Int("limit", maxBodySize))
		return nil, &LoadError{
			Path:   path,
			Status: resp.StatusCode,
			Cause:  fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBodySize),
		}
	}

	l.logger.Debug("resource loaded",
		zap.String("path", path),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))
	return body, nil
}

// Load fetches path and decodes its JSON body into v.
func (l *Loader) Load(ctx context.Context, path string, v any) error {
	body, err := l.LoadRaw(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Path: path, Cause: err}
	}
	return nil
}
