// Package server wires the brochure page, health probe, static assets and
// crawler files onto a chi router.
package server

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"rallypointwellness.com/site/internal/config"
	"rallypointwellness.com/site/internal/content"
	custommw "rallypointwellness.com/site/internal/middleware"
	"rallypointwellness.com/site/internal/observability"
	"rallypointwellness.com/site/internal/page"
	"rallypointwellness.com/site/public"
)

// Deps are the collaborators a router needs.
type Deps struct {
	Store  *content.Store
	Logger *zap.Logger
	// Assets overrides the embedded static files.
	Assets fs.FS
}

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg config.Config, deps Deps) (http.Handler, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("server: content store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	assets := deps.Assets
	if assets == nil {
		embedded, err := public.StaticFS()
		if err != nil {
			return nil, fmt.Errorf("server: embed static: %w", err)
		}
		assets = embedded
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(custommw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", custommw.AssetsWithCache(assets)))
	r.Get("/robots.txt", robotsHandler(cfg.BaseURL))
	r.Get("/sitemap.xml", sitemapHandler(cfg.BaseURL))
	r.Get("/", pageHandler(deps.Store, cfg.PageOptions()))

	return r, nil
}

// New constructs the HTTP server for cfg.Addr.
func New(cfg config.Config, deps Deps) (*http.Server, error) {
	handler, err := NewRouter(cfg, deps)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// pageHandler renders the current content document on every request so dev
// reloads show up without a restart.
func pageHandler(store *content.Store, opts page.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		templ.Handler(Component(store.Current(), opts),
			templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					custommw.WriteError(w, r, http.StatusInternalServerError, err)
				})
			}),
		).ServeHTTP(w, r)
	}
}

// Component adapts the page to templ, recording the render in a "page.render"
// span.
func Component(site *content.Site, opts page.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, span := observability.Tracer().Start(ctx, "page.render",
			trace.WithAttributes(attribute.String("page.variant", string(opts.Variant))),
		)
		defer span.End()

		if err := page.Build(site, opts).Render(w); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
			return fmt.Errorf("server: render page: %w", err)
		}
		return nil
	})
}

// Robots returns robots.txt content, with a sitemap line when baseURL is set.
func Robots(baseURL string) string {
	var sb strings.Builder
	sb.WriteString("User-agent: *\nAllow: /\n")
	if base := strings.TrimRight(strings.TrimSpace(baseURL), "/"); base != "" {
		sb.WriteString("Sitemap: " + base + "/sitemap.xml\n")
	}
	return sb.String()
}

func robotsHandler(baseURL string) http.HandlerFunc {
	body := Robots(baseURL)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, body)
	}
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	NS      string   `xml:"xmlns,attr"`
	URLs    []urlLoc `xml:"url"`
}

type urlLoc struct {
	Loc string `xml:"loc"`
}

// sitemapHandler lists the single page; without a base URL there is nothing
// absolute to list.
func sitemapHandler(baseURL string) http.HandlerFunc {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return func(w http.ResponseWriter, r *http.Request) {
		if base == "" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = io.WriteString(w, xml.Header)
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(urlSet{NS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: []urlLoc{{Loc: base + "/"}}}); err != nil {
			observability.FromContext(r.Context()).Warn("sitemap encode failed", zap.Error(err))
		}
	}
}
