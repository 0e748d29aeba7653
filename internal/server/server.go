package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/scholarsite/internal/dom"
	"github.com/ziadkadry99/scholarsite/internal/loader"
	"github.com/ziadkadry99/scholarsite/internal/publications"
	"github.com/ziadkadry99/scholarsite/internal/site"
)

// FragmentPath serves the publication rows for a filter state.
const FragmentPath = "/fragments/publications"

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // static files served for unmatched paths; empty disables
	Shell    []byte // page shell; empty uses the built-in one
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the site, re-loading its data on every request.
type Server struct {
	cfg        Config
	source     site.Source
	renderer   *site.Renderer
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server reading resources from source.
func New(cfg Config, source site.Source, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []site.RendererOption{
		site.WithRendererLogger(logger),
		site.WithFragmentEndpoint(FragmentPath),
		site.WithBuildID(strings.SplitN(uuid.NewString(), "-", 2)[0]),
	}
	if len(cfg.Shell) > 0 {
		opts = append(opts, site.WithShell(cfg.Shell))
	}
	s := &Server{
		cfg:      cfg,
		source:   source,
		renderer: site.NewRenderer(source, opts...),
		logger:   logger,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Get("/api/publications", s.handlePublications)
	r.Get(FragmentPath, s.handleFragment)
	r.Get("/"+site.StylePath, s.handleAsset(site.StylePath))
	r.Get("/"+site.ScriptPath, s.handleAsset(site.ScriptPath))

	if s.cfg.SiteDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))
	}
	return r
}

// requestLogger logs one line per request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// stateFrom reads the filter state from ?tag= and ?q=.
func stateFrom(r *http.Request) publications.FilterState {
	q := r.URL.Query()
	return publications.NewFilterState(q.Get("tag"), q.Get("q"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, _, err := s.renderer.RenderPage(r.Context(), stateFrom(r))
	if err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(page)
}

// publicationsResponse is the JSON body of /api/publications.
type publicationsResponse struct {
	Tags      []string           `json:"tags"`
	ActiveTag string             `json:"active_tag"`
	Query     string             `json:"query"`
	Count     int                `json:"count"`
	Items     []publications.Row `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) loadView(ctx context.Context, state publications.FilterState) (publications.View, error) {
	var doc publications.Document
	if err := s.source.Load(ctx, publications.ResourcePath, &doc); err != nil {
		return publications.View{}, err
	}
	return publications.NewPipeline(doc.Items).View(state), nil
}

// loadStatus maps a resource failure to a response status.
func loadStatus(err error) int {
	var loadErr *loader.LoadError
	if errors.As(err, &loadErr) && loadErr.Status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	view, err := s.loadView(r.Context(), stateFrom(r))
	if err != nil {
		s.logger.Warn("publications unavailable", zap.Error(err))
		s.writeJSON(w, loadStatus(err), errorResponse{Error: err.Error()})
		return
	}
	rows := view.Rows
	if rows == nil {
		rows = []publications.Row{}
	}
	s.writeJSON(w, http.StatusOK, publicationsResponse{
		Tags:      view.Tags,
		ActiveTag: view.State.ActiveTag,
		Query:     view.State.Query,
		Count:     len(rows),
		Items:     rows,
	})
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	view, err := s.loadView(r.Context(), stateFrom(r))
	if err != nil {
		s.logger.Warn("publications unavailable", zap.Error(err))
		http.Error(w, err.Error(), loadStatus(err))
		return
	}
	out, err := dom.RenderAll(publications.RenderList(view.Rows))
	if err != nil {
		s.logger.Error("rendering fragment", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(out))
}

func (s *Server) handleAsset(name string) http.HandlerFunc {
	content, ctype, _ := site.Asset(name)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ctype)
		w.Write(content)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encoding response", zap.Error(err))
	}
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
// It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("scholarsite server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
